package platform

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
	OSAndroid = "android"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

// ValidateExternalURL checks that a link is a well-formed http(s) URL
func ValidateExternalURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("URL is empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme: %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL has no host: %s", rawURL)
	}
	return nil
}

// OpenURL opens the link in the system browser
func OpenURL(rawURL string) error {
	if err := ValidateExternalURL(rawURL); err != nil {
		return err
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return openURLMacOS(rawURL)
	case OSWindows:
		return openURLWindows(rawURL)
	case OSLinux:
		return openURLLinux(rawURL)
	case OSAndroid:
		return openURLAndroid(rawURL)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openURLMacOS opens the link with the default browser on macOS
func openURLMacOS(rawURL string) error {
	cmd := exec.Command(OpenCommand, rawURL)
	return cmd.Run()
}

// openURLWindows opens the link with the default browser on Windows
func openURLWindows(rawURL string) error {
	cmd := exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", rawURL)
	return cmd.Run()
}

// openURLLinux opens the link with the default browser on Linux
func openURLLinux(rawURL string) error {
	cmd := exec.Command(XDGOpenCommand, rawURL)
	return cmd.Run()
}

// openURLAndroid opens the link through an Android VIEW intent
func openURLAndroid(rawURL string) error {
	cmd := exec.Command("am", "start", "-a", "android.intent.action.VIEW", "-d", rawURL)
	return cmd.Run()
}
