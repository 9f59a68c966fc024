//Package easyosc is a typed convenience layer for OpenSoundControl messaging,
//made for frame-based programs that talk to external applications such as
//Pure Data patches.
//
//Incoming messages are routed by exact address to typed destinations. A
//destination can be a pointer to a variable, a named function, an anonymous
//closure or a method on some object. The wire arguments are coerced into the
//destination type: a float argument assigned to an int variable is truncated,
//a number passed to a string callback is formatted, missing arguments decode
//to zero values.
//
//  recv, _ := easyosc.ListenUDP("127.0.0.1:9001")
//  var gain float32
//  recv.Add("/gain", &gain).
//      Add("/note", func(n int) { play(n) })
//
//The receiver is polled, never pushed: call Update once per frame and every
//message that arrived since the last call is decoded and delivered on the
//calling goroutine. Nothing blocks and no listener runs concurrently with the
//frame.
//
//  for range ticker.C {
//      recv.Update()
//  }
//
//Sending is a one-liner per message; values are packed into the int32, float32
//and string wire types that patching environments expect:
//
//  send, _ := easyosc.NewSender("localhost:9000")
//  send.Send("/gain", 0.5)
//  send.Send("/pos", easyosc.Vec2{X: 10, Y: 20})
//
//The underlying wire handling lives in the osc subpackage.
package easyosc
