package tsctime

// Note: This init is separated out so that it's the single place the package-level Calibrator
// gets built. It gets anchored right away so that Now() yields plausible (if imprecise)
// timestamps before anyone bothered to calibrate.
func init() {
	var err error
	if calibrator, err = New(nil); err != nil {
		// Can't happen with a nil config.
		panic(err)
	}

	calibrator.Init(0)
}
