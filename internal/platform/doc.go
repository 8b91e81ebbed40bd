package platform

// Package platform contains OS/platform integration and external tooling glue:
// media file validation, transcript persistence, whisper.cpp output parsing,
// and OS open/reveal.
