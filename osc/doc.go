//Package osc implements the wire plumbing for OpenSoundControl messaging:
//message and bundle framing, the binary codec, a UDP client for sending and a
//buffered UDP receiver for polling.
//
//This implementation follows the Open Sound Control 1.0 Specification
//(http://opensoundcontrol.org/spec-1_0.html).
//
//The unit of transmission is an OSC Packet. A packet is either a Message (an
//address pattern plus zero or more typed arguments) or a Bundle (a time tag
//plus nested packets). Supported argument TypeTags:
//
//	'i' (int32)
//	'f' (float32)
//	's' (string)
//	'b' ([]byte)
//	't' (Timetag)
//	'h' (int64)
//	'd' (float64)
//	'T' (true)
//	'F' (false)
//	'N' (nil)
//
//Sending:
//  client, _ := osc.Dial("localhost:8765")
//  msg := osc.NewMessage("/osc/address")
//  msg.Append(int32(111))
//  msg.Append("hello")
//  client.Send(msg)
//
//Receiving is pull based. A Receiver buffers parsed messages on an internal
//queue; the caller drains it whenever it wants, typically once per frame:
//  recv, _ := osc.ListenUDP("127.0.0.1:9001")
//  for recv.HasWaiting() {
//      msg := recv.NextMessage()
//      // ...
//  }
//
//The typed convenience layer in the parent package builds on top of Receiver
//and Client; most programs want that instead of this package.
package osc
