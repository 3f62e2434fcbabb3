// Package wav decodes RIFF/WAVE container files into typed, immutable records.
//
// The decoder walks the chunk sequence exactly once, decoding the "fmt ",
// "data", "fact" and "cue " chunks and skipping everything else with correct
// even-byte alignment. Sample data is kept as raw bytes in file order; no PCM
// conversion is performed.
//
//	f, err := wav.Open("audio.wav")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(f.NumChannels(), f.SampleRate(), f.BitsPerSample())
//
// A successful parse yields a File whose accessors return defensive copies, so
// the result can be shared freely. A failed parse yields no usable File.
package wav
