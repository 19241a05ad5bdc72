package version

// Version is overridden at build time via -ldflags "-X landing/internal/version.Version=...".
var Version = "dev"
