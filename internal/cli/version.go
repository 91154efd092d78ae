package cli

import (
	"fmt"
	"runtime/debug"
	"strings"
)

const appURL = "https://github.com/babarot/brm"

// Version is stamped into the binary at build time
type Version struct {
	AppName   string
	Version   string
	Revision  string
	BuildDate string
}

// resolved fills unset fields from the module build info, which is all a
// `go install` build has
func (v Version) resolved() Version {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v
	}
	if unset(v.Version) && info.Main.Version != "" {
		v.Version = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if unset(v.Revision) {
				v.Revision = s.Value
			}
		case "vcs.time":
			if unset(v.BuildDate) {
				v.BuildDate = s.Value
			}
		}
	}
	return v
}

func unset(s string) bool {
	switch s {
	case "", "unset", "unknown", "develop":
		return true
	}
	return false
}

func (v Version) Print() string {
	v = v.resolved()

	var s strings.Builder
	fmt.Fprintf(&s, "%s %s\n", v.AppName, v.Version)
	fmt.Fprintf(&s, "  revision:   %s\n", v.Revision)
	fmt.Fprintf(&s, "  build date: %s\n", v.BuildDate)
	fmt.Fprintf(&s, "%s\n", appURL)
	return s.String()
}
