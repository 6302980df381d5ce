package constants

import "strings"

// getOSReleaseField parses a field from /etc/os-release content.
// Values may be quoted or bare, i.e. ID="ubuntu" or ID=ubuntu.
func getOSReleaseField(content, key string) string {
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, key+"=") {
			return strings.Trim(line[len(key)+1:], "\"")
		}
	}
	return ""
}
