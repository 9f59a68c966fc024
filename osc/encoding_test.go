package osc

import (
	"bytes"
	"reflect"
	"testing"
)

func TestParsePaddedString(t *testing.T) {
	for _, tt := range []struct {
		buf     []byte // buffer
		wantN   int    // bytes consumed
		wantStr string // resulting string
		wantErr bool
	}{
		{[]byte{'t', 'e', 's', 't', 's', 't', 'r', 'i', 'n', 'g', 0, 0}, 12, "teststring", false},
		{[]byte{'t', 'e', 's', 't', 'e', 'r', 's', 0}, 8, "testers", false},
		{[]byte{'t', 'e', 's', 't', 's', 0, 0, 0}, 8, "tests", false},
		{[]byte{'t', 'e', 's', 0, 0, 0, 0, 0}, 4, "tes", false}, // OSC uses null terminated strings
		{[]byte{'t', 'e', 's', 't'}, 0, "", true},               // without a null byte it doesn't work
	} {
		got, n, err := parsePaddedString(tt.buf)
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: parsePaddedString() error = %v, wantErr %v", tt.wantStr, err, tt.wantErr)
		}
		if n != tt.wantN {
			t.Errorf("%s: bytes consumed don't match; got = %d, want = %d", tt.wantStr, n, tt.wantN)
		}
		if got != tt.wantStr {
			t.Errorf("%s: strings don't match; got = %q, want = %q", tt.wantStr, got, tt.wantStr)
		}
	}
}

func TestWritePaddedString(t *testing.T) {
	buf := new(bytes.Buffer)
	testString := "testString"
	expectedNumberOfWrittenBytes := len(testString) + 1 + padBytesNeeded(len(testString)+1)

	if n := writePaddedString(testString, buf); n != expectedNumberOfWrittenBytes {
		t.Errorf("Expected number of written bytes should be \"%d\" and is \"%d\"", expectedNumberOfWrittenBytes, n)
	}
	if buf.Len() != expectedNumberOfWrittenBytes {
		t.Errorf("Buffer should contain %d bytes and contains %d", expectedNumberOfWrittenBytes, buf.Len())
	}
}

func TestBlobRoundTrip(t *testing.T) {
	blob := []byte{0xde, 0xad, 0xbe, 0xef, 0x01}

	buf := new(bytes.Buffer)
	written := writeBlob(blob, buf)
	if written != buf.Len() {
		t.Fatalf("writeBlob() = %d, buffer has %d", written, buf.Len())
	}
	if buf.Len()%4 != 0 {
		t.Fatalf("writeBlob() output is not 32-bit aligned: %d", buf.Len())
	}

	got, n, err := parseBlob(buf.Bytes())
	if err != nil {
		t.Fatalf("parseBlob() error = %v", err)
	}
	if n != buf.Len() {
		t.Errorf("parseBlob() consumed = %d, want %d", n, buf.Len())
	}
	if !reflect.DeepEqual(got, blob) {
		t.Errorf("parseBlob() got = %v, want %v", got, blob)
	}
}

func TestPadBytesNeeded(t *testing.T) {
	for _, tt := range []struct {
		in, want int
	}{
		{4, 0},
		{3, 1},
		{1, 3},
		{0, 0},
		{32, 0},
		{63, 1},
		{10, 2},
	} {
		if n := padBytesNeeded(tt.in); n != tt.want {
			t.Errorf("padBytesNeeded(%d) = %d, want %d", tt.in, n, tt.want)
		}
	}
}
