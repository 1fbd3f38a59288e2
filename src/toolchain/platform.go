package toolchain

import "sort"

// Platform is a catalog entry for one target platform. Used for validation
// warnings and listing only; the build algorithm treats platform identifiers
// as opaque.
type Platform struct {
	ID          string
	Arch        string
	OS          string
	Description string
}

var platforms = map[string]Platform{
	"linux-x86_64":    {ID: "linux-x86_64", Arch: "x86_64", OS: "Linux", Description: "Linux 64-bit Intel/AMD"},
	"linux-arm64":     {ID: "linux-arm64", Arch: "arm64", OS: "Linux", Description: "Linux 64-bit ARM"},
	"linux-armv7":     {ID: "linux-armv7", Arch: "armv7", OS: "Linux", Description: "Linux 32-bit ARM"},
	"windows-x86_64":  {ID: "windows-x86_64", Arch: "x86_64", OS: "Windows", Description: "Windows 64-bit"},
	"windows-x86":     {ID: "windows-x86", Arch: "x86", OS: "Windows", Description: "Windows 32-bit"},
	"macos-x86_64":    {ID: "macos-x86_64", Arch: "x86_64", OS: "macOS", Description: "macOS Intel 64-bit"},
	"macos-arm64":     {ID: "macos-arm64", Arch: "arm64", OS: "macOS", Description: "macOS Apple Silicon"},
	"android-arm64":   {ID: "android-arm64", Arch: "arm64", OS: "Android", Description: "Android 64-bit ARM"},
	"android-armv7":   {ID: "android-armv7", Arch: "armv7", OS: "Android", Description: "Android 32-bit ARM"},
	"ios-arm64":       {ID: "ios-arm64", Arch: "arm64", OS: "iOS", Description: "iOS 64-bit ARM"},
	"ios-x86_64":      {ID: "ios-x86_64", Arch: "x86_64", OS: "iOS", Description: "iOS Simulator"},
	"web-wasm":        {ID: "web-wasm", Arch: "wasm", OS: "Web", Description: "WebAssembly"},
	"web-js":          {ID: "web-js", Arch: "js", OS: "Web", Description: "JavaScript"},
	"embedded-arm":    {ID: "embedded-arm", Arch: "arm", OS: "Embedded", Description: "Embedded ARM"},
	"embedded-risc-v": {ID: "embedded-risc-v", Arch: "risc-v", OS: "Embedded", Description: "Embedded RISC-V"},
}

// KnownPlatform reports whether id is in the catalog.
func KnownPlatform(id string) bool {
	_, ok := platforms[id]
	return ok
}

// AllPlatforms returns the platform catalog sorted by identifier.
func AllPlatforms() []Platform {
	out := make([]Platform, 0, len(platforms))
	for _, p := range platforms {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
