package tmux

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const windowFormat = "#{window_id}\t#{session_name}\t#{window_index}\t#{window_active}\t#{window_name}"

// FetchWindows lists the windows of the current session. When the current
// session cannot be determined the session of the first listed window is used.
func FetchWindows(socketPath string) (WindowSnapshot, error) {
	client, err := clientFor(socketPath)
	if err != nil {
		return WindowSnapshot{}, err
	}
	lines, err := client.ListWindowsFormat("", "", windowFormat)
	if err != nil {
		return WindowSnapshot{}, fmt.Errorf("list windows: %w", err)
	}
	all, err := parseWindowLines(lines)
	if err != nil {
		return WindowSnapshot{}, err
	}
	session := currentSessionName(client)
	if session == "" && len(all) > 0 {
		session = all[0].Session
	}
	return snapshotFor(session, all), nil
}

func snapshotFor(session string, all []Window) WindowSnapshot {
	snapshot := WindowSnapshot{Session: session}
	for _, w := range all {
		if w.Session != session {
			continue
		}
		snapshot.Windows = append(snapshot.Windows, w)
		if w.Active {
			snapshot.CurrentID = w.ID
		}
	}
	sort.SliceStable(snapshot.Windows, func(i, j int) bool {
		return snapshot.Windows[i].Index < snapshot.Windows[j].Index
	})
	return snapshot
}

func parseWindowLines(lines []string) ([]Window, error) {
	windows := make([]Window, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 5)
		if len(fields) != 5 {
			return nil, fmt.Errorf("unexpected window line %q", line)
		}
		index, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			return nil, fmt.Errorf("window %s: bad index %q: %w", fields[0], fields[2], err)
		}
		windows = append(windows, Window{
			ID:      strings.TrimSpace(fields[0]),
			Session: fields[1],
			Index:   index,
			Active:  strings.TrimSpace(fields[3]) == "1",
			Name:    fields[4],
		})
	}
	return windows, nil
}

// SelectWindow makes target the current window of its session.
func SelectWindow(socketPath, target string) error {
	target = strings.TrimSpace(target)
	if target == "" {
		return fmt.Errorf("select window: empty target")
	}
	client, err := clientFor(socketPath)
	if err != nil {
		return err
	}
	if err := client.SelectWindow(target); err != nil {
		return fmt.Errorf("select window %s: %w", target, err)
	}
	return nil
}
