package version

// Version is the build version, overridden at link time:
//
//	go build -ldflags "-X portfolio-api/internal/version.Version=v1.2.3"
var Version = "dev"
