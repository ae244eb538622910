package hostops

import "runtime"

// platformNames maps runtime.GOOS to the capitalized platform names OIL
// programs get from GetPlatformName: Go's own GOOS names, title-cased,
// except darwin, which is reported as MacOS. Any GOOS not listed here is
// returned unchanged by currentPlatformName.
var platformNames = map[string]string{
	"windows": "Windows",
	"darwin":  "MacOS",
	"linux":   "Linux",
	"freebsd": "FreeBSD",
}

func currentPlatformName() string {
	if name, ok := platformNames[runtime.GOOS]; ok {
		return name
	}
	return runtime.GOOS
}
