// Package heartrate estimates heart rate from a remote
// photoplethysmography (rPPG) sample stream.
//
// An upstream vision pipeline delivers one averaged green-channel
// intensity per camera frame. The estimator keeps a fixed-capacity
// sliding window of those samples and, on demand, detrends and windows
// the block, transforms it to the frequency domain, and searches the
// physiological band (45-200 BPM) for the dominant spectral peak. A
// signal-to-noise gate rejects unreliable peaks and an exponential
// smoother suppresses jitter between estimates; once a rate is locked,
// the search narrows to ±15 BPM around it so transient artifacts far
// from the current rate cannot capture the estimate.
//
// All degraded conditions (too little data, weak signal, empty search
// range) fall back to the last accepted value or 0. The consuming
// display layer always gets a usable number, never an error.
//
// # Usage
//
//	est, err := heartrate.NewEstimator(heartrate.WithSampleRate(30))
//	// per frame, from the capture pipeline:
//	est.AddSample(greenAvg, timestampMillis)
//	// about once a second, from a timer:
//	bpm := est.ComputeHeartRate() // 0 until enough samples arrive
//
// All public methods are safe for concurrent use; a single mutex
// serializes the frame producer against the periodic consumer.
package heartrate
