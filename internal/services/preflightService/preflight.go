package preflightservice

import (
	"context"
	"fmt"
	"net/http"
	"time"

	probing "github.com/prometheus-community/pro-bing"

	platformservice "github.com/nbstrap/nbstrap/internal/services/platformService"
	"github.com/nbstrap/nbstrap/internal/utils/spinner"
)

const (
	// Package index the installs will pull from
	DefaultTarget = "pypi.org"
	// URL probed first; a HEAD here proves the index is actually reachable
	DefaultProbeURL = "https://pypi.org/simple/"

	httpTimeout = 5 * time.Second
	pingCount   = 3
	pingTimeout = 10 * time.Second

	// Venv creation plus a notebook install fits comfortably under this;
	// less free space than this is worth a warning.
	MinFreeBytes = 1 << 30
)

// NetworkResult describes the outcome of the connectivity preflight.
type NetworkResult struct {
	Reachable bool
	// "https" or "icmp"
	Method string
	// Default gateways, reported when the target is unreachable
	GatewayIPs []string
	Detail     string
}

// CheckNetwork probes connectivity to the package index before any install
// runs. HTTPS first; ICMP ping as a fallback for hosts where the proxy setup
// breaks direct HTTP from this process but the network is otherwise fine.
func CheckNetwork(ctx context.Context) NetworkResult {
	if detail, err := httpProbe(ctx, DefaultProbeURL); err == nil {
		return NetworkResult{Reachable: true, Method: "https", Detail: detail}
	}

	if detail, err := icmpProbe(ctx, DefaultTarget); err == nil {
		return NetworkResult{Reachable: true, Method: "icmp", Detail: detail}
	}

	res := NetworkResult{
		Reachable: false,
		Detail:    fmt.Sprintf("%s unreachable over HTTPS and ICMP", DefaultTarget),
	}

	// Include the default gateway to help the user figure out whether the
	// problem is local routing or upstream.
	if info, err := platformservice.GatherPlatformInfo(); err == nil {
		res.GatewayIPs = info.GatewayIPs
	}

	return res
}

func httpProbe(ctx context.Context, url string) (string, error) {
	client := http.Client{Timeout: httpTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return "", fmt.Errorf("index returned %s", resp.Status)
	}

	return fmt.Sprintf("HEAD %s -> %s", url, resp.Status), nil
}

func icmpProbe(ctx context.Context, target string) (string, error) {
	pinger, err := probing.NewPinger(target)
	if err != nil {
		return "", fmt.Errorf("failed to create pinger: %w", err)
	}

	pinger.SetPrivileged(false)
	pinger.Count = pingCount
	pinger.Timeout = pingTimeout

	go func() {
		<-ctx.Done()
		pinger.Stop()
	}()

	stop := spinner.StartSpinner(fmt.Sprintf("Pinging %s ", target))
	err = pinger.Run()
	stop()

	if err != nil {
		return "", err
	}

	stats := pinger.Statistics()
	if stats.PacketsRecv == 0 {
		return "", fmt.Errorf("no ICMP replies from %s", target)
	}

	return fmt.Sprintf("%d/%d ICMP replies from %s, avg rtt %v",
		stats.PacketsRecv, stats.PacketsSent, target, stats.AvgRtt), nil
}

// CheckDiskSpace reports the free bytes at the install target and whether it
// clears the minimum. A failed probe is treated as "enough" so an exotic
// filesystem never blocks a bootstrap.
func CheckDiskSpace(path string) (free uint64, enough bool) {
	free, err := platformservice.FreeSpaceAt(path)
	if err != nil {
		return 0, true
	}
	return free, free >= MinFreeBytes
}
