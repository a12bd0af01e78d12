package updater

import (
	"fmt"
	"io"
	"time"

	"github.com/maximal-ai/maximal/internal/branding"
)

// CheckAndPrintBanner prints an update notice from the cached check and
// refreshes a stale cache in the background. It never blocks startup.
func (u *Updater) CheckAndPrintBanner(w io.Writer, configDir string) {
	cache, err := LoadCache(configDir)
	if err != nil {
		return
	}

	if cache != nil && cache.UpdateAvailable {
		PrintUpdateBanner(w, cache.CurrentVersion, cache.LatestVersion)
	}

	if IsCacheStale(cache, DefaultCacheMaxAge) {
		go u.refreshCache(configDir)
	}
}

// PrintUpdateBanner prints the update notification to w.
func PrintUpdateBanner(w io.Writer, current, latest string) {
	fmt.Fprintf(w, "\nUpdate available: %s -> %s\n", current, latest)
	fmt.Fprintf(w, "    Run `%s upgrade` to update\n\n", branding.CLIName())
}

// refreshCache fetches the latest version and rewrites the cache file.
// Runs in a background goroutine and never fails loudly.
func (u *Updater) refreshCache(configDir string) {
	release, err := u.Latest()
	if err != nil {
		return
	}

	available, err := IsUpdateAvailable(u.currentVersion, release.Version)
	if err != nil {
		return
	}

	_ = SaveCache(configDir, &VersionCache{
		LatestVersion:   release.Version,
		CurrentVersion:  u.currentVersion,
		CheckedAt:       time.Now(),
		UpdateAvailable: available,
	})
}
