// SPDX-License-Identifier: EPL-2.0

// Package audswitch lets an application drive audio playback without
// depending on the engine that executes it.
//
// The Switcher interface is the whole surface: sources and buffers,
// transport controls, sample upload, per-channel 3D transforms for
// sources and the listener, distance attenuation and directivity. Adapter
// implements it over any engine.Engine; by default that is engine.Soft, a
// pure Go engine that plays through the system output device.
//
// # Lifecycle
//
// Nothing works until Init succeeds. Before Init and after Finish every
// call returns its sentinel: 0 for handles, false for setters, ok=false
// for getters.
//
//	sw := audswitch.NewAdapter()
//	if err := sw.Init(audswitch.DefaultConfig()); err != nil {
//	    return err
//	}
//	defer sw.Close()
//
// # Playing a sound
//
//	src, err := formats.Open("bell.ogg")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	buf := sw.CreateBuffer()
//	if err := audswitch.LoadBuffer(sw, buf, src, audswitch.LoadOptions{}); err != nil {
//	    return err
//	}
//
//	voice := sw.CreateSource()
//	sw.AttachBufferToSource(voice, buf)
//	sw.SetSourceStandardParams(voice)
//	sw.PlaySource(voice)
//
// # 3D audio
//
// Call Init3DScene once, enable spatial rendering per source and place
// sources and the listener with Transform values. Rotation rows are the
// right, up and forward axes; the forward axis drives directivity.
//
//	sw.Init3DScene()
//	sw.EnableSource3DAudio(voice, true)
//	t := engine.IdentityTransform()
//	t.Position = audswitch.Vec3{3, 0, -2}
//	sw.SetSource3DStateChannel(voice, 0, t)
//	sw.SetSourceDirectivityType(voice, int(audswitch.SuperCardioid))
//
// # Configuration
//
// LoadConfig reads an optional config file and AUDSWITCH_* environment
// variables on top of DefaultConfig. Set AudioEnabled to false to run
// without an output device, as tests do.
package audswitch
