// SPDX-License-Identifier: EPL-2.0

// Package sndfile opens and creates sound files, picking the codec for the
// job from a registry of readers and writers.
//
// Readers are chosen by content: every registered reader probes the data in
// registration order, with the stream rewound before each probe, and the
// first one that accepts it wins. Writers are chosen by file name.
//
// # Supported Formats
//
// The built-in codecs are registered on the first lookup, in this order:
//   - FLAC read and write via formats/flac
//   - Ogg Vorbis read via formats/vorbis (writing reports
//     vorbis.ErrEncodingUnsupported)
//   - WAV read and write via formats/wav
//
// MP3 (formats/mp3) and AIFF (formats/aiff) readers are available but not
// built in:
//
//	sndfile.RegisterReader(mp3.ReaderEntry)
//	sndfile.RegisterReader(aiff.ReaderEntry)
//
// Entries registered before the first lookup are probed before the built-in
// ones, so a custom codec can take over a built-in format.
//
// # Quick Start
//
//	in, err := sndfile.OpenInputFile("voice.flac")
//	if err != nil {
//		return err
//	}
//	defer in.Close()
//
//	buf := make([]int16, 4096)
//	for {
//		n, err := in.Read(buf)
//		process(buf[:n])
//		if err == io.EOF {
//			break
//		}
//	}
//
// Samples are always interleaved signed 16-bit integers. Offsets and counts
// are in samples over all channels, so one stereo frame is two samples.
//
// # Diagnostics
//
// Failures are returned as errors and also logged at warn level through the
// factory's zap logger (zap.L() unless WithLogger is given). The package
// level functions use the shared factory returned by Default.
package sndfile
