package version

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// UpgradeSelf is the entrypoint for 'nbstrap self upgrade'.
func UpgradeSelf(cmd *cobra.Command, args []string, checkOnly bool) error {
	info := GetPackageInfo()

	repo, err := getRepoUrlPath()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error getting repository path (user/repo): %v\n", err)
		return err
	}

	apiURL := fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", repo)
	fmt.Fprintln(cmd.ErrOrStderr(), "Checking for latest release...")

	resp, err := http.Get(apiURL)
	if err != nil {
		return fmt.Errorf("failed to fetch latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GitHub API returned status: %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
		Assets  []struct {
			Name               string `json:"name"`
			BrowserDownloadURL string `json:"browser_download_url"`
		} `json:"assets"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return fmt.Errorf("failed to parse release JSON: %w", err)
	}

	current := info.PackageVersion
	latest := release.TagName

	fmt.Fprintln(cmd.ErrOrStderr(), "Current version:", current)
	fmt.Fprintln(cmd.ErrOrStderr(), "Latest version: ", latest)

	if current == "dev" {
		fmt.Fprintf(cmd.ErrOrStderr(), "🛠️  This is a development release: %s\n", current)
		return nil
	}

	switch compareVersion(current, latest) {
	case -1:
		fmt.Fprintf(cmd.ErrOrStderr(), "🚀 Upgrade available: %s → %s\n", current, latest)
		if checkOnly {
			fmt.Fprintln(cmd.ErrOrStderr(), "✅ Use this command without --check to upgrade.")
			return nil
		}
	case 0:
		fmt.Fprintf(cmd.ErrOrStderr(), "🔄 No new release available, nbstrap is up to date (%s).\n", current)
		return nil
	case 1:
		fmt.Fprintf(cmd.ErrOrStderr(), "🤯 You're ahead of the latest release: current=%s, release=%s\n", current, latest)
		return nil
	}

	arch := runtime.GOARCH

	// Release assets are named nbstrap-<os>-<arch>-<version>.zip
	expectedPrefix := fmt.Sprintf("nbstrap-%s-%s-", strings.ToLower(runtime.GOOS), strings.ToLower(arch))

	var assetURL string
	for _, asset := range release.Assets {
		if asset.Name == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(asset.Name), expectedPrefix) && strings.HasSuffix(strings.ToLower(asset.Name), ".zip") {
			assetURL = asset.BrowserDownloadURL
			break
		}
	}

	if assetURL == "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "Available assets:")
		for _, asset := range release.Assets {
			fmt.Fprintln(cmd.ErrOrStderr(), " -", asset.Name)
		}
		return fmt.Errorf("no suitable release found for platform: %s/%s", runtime.GOOS, runtime.GOARCH)
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Downloading:", assetURL)

	resp2, err := http.Get(assetURL)
	if err != nil {
		return fmt.Errorf("failed to download binary zip: %w", err)
	}
	defer resp2.Body.Close()

	zipTmp, err := os.CreateTemp("", "nbstrap-upgrade-*.zip")
	if err != nil {
		return fmt.Errorf("failed to create temp zip file: %w", err)
	}
	defer os.Remove(zipTmp.Name())

	if _, err := io.Copy(zipTmp, resp2.Body); err != nil {
		return fmt.Errorf("failed to write zip file: %w", err)
	}
	zipTmp.Close()

	binaryTmp, err := extractBinaryFromZip(zipTmp.Name())
	if err != nil {
		return fmt.Errorf("failed to extract binary: %w", err)
	}
	defer os.Remove(binaryTmp)

	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}

	newPath := exePath + ".new"
	if err := copyFile(binaryTmp, newPath); err != nil {
		if os.IsPermission(err) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Permission denied: try running with 'sudo nbstrap self upgrade'")
		}
		return fmt.Errorf("failed to save new binary: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(),
		"✅ Upgrade downloaded:\n  %s\n"+
			"  It will be applied next time you run a nbstrap command, i.e. nbstrap self version.\n",
		newPath)

	return nil
}

// getRepoUrlPath returns the "user/repo" path used in GitHub API URLs.
func getRepoUrlPath() (string, error) {
	if RepoUser == "" || RepoName == "" {
		return "", fmt.Errorf("repository owner or name is empty")
	}
	return RepoUser + "/" + RepoName, nil
}

// compareVersion compares two version strings like "v0.3.1" or "0.3.1".
// Returns -1 when a < b, 0 when equal, 1 when a > b.
func compareVersion(a, b string) int {
	parse := func(v string) []int {
		v = strings.TrimPrefix(strings.TrimSpace(v), "v")
		parts := strings.Split(v, ".")
		nums := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil {
				n = 0
			}
			nums = append(nums, n)
		}
		return nums
	}

	av, bv := parse(a), parse(b)
	for i := 0; i < len(av) || i < len(bv); i++ {
		var x, y int
		if i < len(av) {
			x = av[i]
		}
		if i < len(bv) {
			y = bv[i]
		}
		if x < y {
			return -1
		}
		if x > y {
			return 1
		}
	}

	return 0
}

// extractBinaryFromZip extracts the binary from a zip file and returns path
func extractBinaryFromZip(zipPath string) (string, error) {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return "", err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		defer rc.Close()

		tmpBin, err := os.CreateTemp("", "nbstrap-bin-*")
		if err != nil {
			return "", err
		}

		if _, err := io.Copy(tmpBin, rc); err != nil {
			tmpBin.Close()
			return "", err
		}

		tmpBin.Close()

		if err := os.Chmod(tmpBin.Name(), 0755); err != nil {
			return "", err
		}

		return tmpBin.Name(), nil
	}

	return "", fmt.Errorf("no binary found in zip archive")
}

// copyFile utility
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}

	return out.Chmod(0755)
}

// TrySelfUpgrade checks if "<binary>.new" exists and replaces current binary with it.
func TrySelfUpgrade() {
	exePath, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get executable path: %v\n", err)
		return
	}

	newPath := exePath + ".new"

	if _, err := os.Stat(newPath); err == nil {
		// New file exists: perform replacement

		if runtime.GOOS == "windows" {
			// Use Windows-specific updater
			err := RunWindowsSelfUpgrade(exePath, newPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "nbstrap Windows self-upgrade failed: %v\n", err)
			} else {
				fmt.Fprintf(os.Stderr, "🔁 nbstrap upgraded successfully.\n")
				// Exit after successful upgrade so new exe is run by RunWindowsSelfUpgrade
				os.Exit(0)
			}
		}

		if errRename := os.Rename(newPath, exePath); errRename != nil {
			fmt.Fprintf(os.Stderr, "Failed to replace executable: %v\n", errRename)
		} else {
			fmt.Fprintf(os.Stderr, "🔁 nbstrap upgraded successfully.\n")
		}
	}
}
