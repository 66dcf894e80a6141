// Copyright 2013 - 2015 Sebastian Ruml <sebastian.ruml@gmail.com>
// Copyright 2021 - 2022 Mendel Greenberg <mendel@chabad360.me>

//Package osc provides the OpenSoundControl transport used to talk to Bitwig Studio.
//
//This implementation is based on the Open Sound Control 1.0 Specification (http://opensoundcontrol.org/spec-1_0.html).
//It only speaks OSC Messages: every command sent to a control surface is a single datagram and bundles are never
//produced, so parsing a bundle returns ErrBundleUnsupported.
//
//Features
//
//- Supports OSC messages with the following TypeTags:
//
//	'i' (int32)
//	'f' (float32)
//	's' (string)
//	'b' ([]byte)
//	'h' (int64)
//	'd' (float64)
//	'T' (true)
//	'F' (false)
//	'N' (nil)
//
//- OSC Address matching and dispatching for received messages.
//
//Packets
//
//The unit of transmission of OSC is an OSC Packet. Any application that sends OSC Packets is an OSC Client;
//any application that receives OSC Packets is an OSC Server.
//
//An OSC packet consists of its contents, a contiguous block of binary data.
//The size of an OSC packet is always 32-bit aligned.
//
//Usage
//
//OSC client example:
//  client, err := osc.Dial("127.0.0.1:8000")
//  if err != nil {
//      return err
//  }
//  defer client.Close()
//  client.Send(osc.NewMessage("/vkb_midi/1/note/60", int32(100)))
//
//OSC server example:
//  d := &osc.Dispatcher{}
//  d.AddMethodFunc("/vkb_midi/1/note/60", func(msg *osc.Message) {
//      fmt.Println(msg)
//  })
//
//  server := &osc.Server{
//      Addr:       "127.0.0.1:8000",
//      Dispatcher: d,
//  }
//  server.ListenAndServe()
package osc
