package translate

// Package translate runs translation requests off the UI thread. A Service
// starts one worker goroutine per request and reports exactly one outcome
// through its callback. The external capability is abstracted behind
// Translator with Google, LibreTranslate and AWS Lambda backends.
