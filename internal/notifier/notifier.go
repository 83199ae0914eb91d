// Package notifier delivers notifications through the wellspring tray
// companion app, which listens on a localhost webhook advertised in a
// lockfile (port|secret|pid).
package notifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"wellspring/internal/constants"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

type Notifier struct{}

// WebhookPayload is the tray app's notification contract. NotificationID is
// stable: re-posting with the same id replaces the prior notification instead
// of stacking a new one.
type WebhookPayload struct {
	ChannelID      string `json:"channel_id"`
	NotificationID int    `json:"notification_id"`
	Title          string `json:"title"`
	Text           string `json:"text"`
	DurationMs     uint32 `json:"duration_ms"`
}

func New() *Notifier {
	return &Notifier{}
}

// EnsureChannel verifies that the tray companion is reachable: lockfile
// present, process alive, executable name matching. Idempotent and safe to
// call before every notification.
func (n *Notifier) EnsureChannel() error {
	lockfile, err := lockfilePath()
	if err != nil {
		return err
	}
	_, _, err = readAndValidateLockfile(lockfile)
	return err
}

// Notify posts the fixed hydration reminder. Activating the notification in
// the tray app brings the main interface to the foreground; that side is the
// tray app's job, this side only supplies the stable identity and content.
func (n *Notifier) Notify() error {
	lockfile, err := lockfilePath()
	if err != nil {
		return err
	}

	port, secret, err := readAndValidateLockfile(lockfile)
	if err != nil {
		return err
	}

	payload := WebhookPayload{
		ChannelID:      constants.HydrationChannelID,
		NotificationID: constants.HydrationNotificationID,
		Title:          constants.HydrationNotificationTitle,
		Text:           constants.HydrationNotificationBody,
		DurationMs:     constants.NotificationDurationMs,
	}
	return sendNotification(port, secret, payload)
}

func lockfilePath() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}
	return filepath.Join(configDir, constants.TrayAppIdentifier, constants.NotifierLockfileName), nil
}

func readAndValidateLockfile(path string) (string, string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", "", errors.New("wellspring-tray is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := strings.TrimSpace(parts[0])
	portNum, err := strconv.Atoi(port)
	if err != nil || portNum < 1 || portNum > 65535 {
		return "", "", errors.New("invalid port number in lockfile")
	}

	secret := parts[1]
	if secret == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	pid, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return "", "", errors.New("invalid pid in lockfile")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("wellspring-tray process not running")
	}
	if !strings.HasPrefix(process.Executable(), constants.TrayAppExecutable) {
		return "", "", fmt.Errorf("process with PID %d is not %s (is %s)", pid, constants.TrayAppExecutable, process.Executable())
	}

	return port, secret, nil
}

func sendNotification(port string, secret string, payload WebhookPayload) error {
	url := fmt.Sprintf("http://127.0.0.1:%s", port)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Wellspring-Secret", secret)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
}
