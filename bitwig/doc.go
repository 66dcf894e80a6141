// Package bitwig is a client for the DrivenByMoss Open Sound Control API of Bitwig Studio.
//
// A Client formats every action as a single OSC message and sends it fire-and-forget over UDP.
// It also remembers which notes it started, so that StopAllPlayingNotes and Shutdown can turn
// every one of them off again. Nothing is left sounding as long as the hosting program ends
// with Shutdown, either directly, through Close, or through HandleInterrupt:
//
//	c, err := bitwig.Dial(bitwig.WithAddress("127.0.0.1", 8000), bitwig.WithChannel(1))
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//	stop := bitwig.HandleInterrupt(c)
//	defer stop()
//
//	c.ArmTrack(1)
//	c.PlayNote(60, 100, bitwig.Melodic)
//
// API reference: https://github.com/git-moss/DrivenByMoss/wiki/Open-Sound-Control-(OSC)
package bitwig
