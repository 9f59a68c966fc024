package osc

// Shared packet test cases. The raw form of each case is the canonical wire
// encoding, so the same table drives marshal, unmarshal and parse tests.
type testCase struct {
	name    string
	raw     []byte
	obj     Packet
	wantErr bool
}

var messageTestCases = []testCase{
	{
		"no_args",
		[]byte("/a\x00\x00,\x00\x00\x00"),
		&Message{Address: "/a", Arguments: []interface{}{}},
		false,
	},
	{
		"standard",
		append(append([]byte("/address/test\x00\x00\x00,ifsT\x00\x00\x00"),
			0x00, 0x00, 0x04, 0x62, // int32(1122)
			0x40, 0x48, 0xf5, 0xc3, // float32(3.14)
		), []byte("hello\x00\x00\x00")...),
		&Message{Address: "/address/test", Arguments: []interface{}{int32(1122), float32(3.14), "hello", true}},
		false,
	},
	{
		"wide_types",
		append([]byte("/w\x00\x00,hd\x00"),
			0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, 0x00, // int64(256)
			0x40, 0x09, 0x21, 0xfb, 0x54, 0x44, 0x2d, 0x18, // float64(3.141592653589793)
		),
		&Message{Address: "/w", Arguments: []interface{}{int64(256), float64(3.141592653589793)}},
		false,
	},
}

var bundleTestCases = []testCase{
	{
		"immediate_bundle",
		append([]byte("#bundle\x00\x00\x00\x00\x00\x00\x00\x00\x01"),
			0x00, 0x00, 0x00, 0x08, '/', 'a', 0x00, 0x00, ',', 0x00, 0x00, 0x00,
		),
		&Bundle{Timetag: TimetagImmediate, Elements: []Packet{
			&Message{Address: "/a", Arguments: []interface{}{}},
		}},
		false,
	},
}
