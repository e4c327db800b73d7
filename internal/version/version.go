package version

// Version is overridden at build time with -ldflags "-X chatconsole/internal/version.Version=...".
var Version = "dev"
