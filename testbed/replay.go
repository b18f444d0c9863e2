package main

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
)

type replayMsg struct {
	key tea.KeyPressMsg
}

func (m replayMsg) Describe() string {
	return fmt.Sprintf("replay key=%q", m.key.String())
}

// keyReplay feeds scripted key presses one at a time so a session can be
// reproduced without typing.
type keyReplay struct {
	queue []tea.KeyPressMsg
	delay time.Duration
}

var namedKeys = map[string]tea.KeyPressMsg{
	"enter":     {Code: tea.KeyEnter},
	"esc":       {Code: tea.KeyEscape},
	"space":     {Code: tea.KeySpace, Text: " "},
	"tab":       {Code: tea.KeyTab},
	"shift+tab": {Code: tea.KeyTab, Mod: tea.ModShift},
	"up":        {Code: tea.KeyUp},
	"down":      {Code: tea.KeyDown},
	"left":      {Code: tea.KeyLeft},
	"right":     {Code: tea.KeyRight},
	"pgup":      {Code: tea.KeyPgUp},
	"pgdown":    {Code: tea.KeyPgDown},
}

func parseReplay(script string, delay time.Duration) (*keyReplay, error) {
	r := &keyReplay{delay: delay}
	for _, raw := range strings.Split(script, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if k, ok := namedKeys[name]; ok {
			r.queue = append(r.queue, k)
			continue
		}
		runes := []rune(name)
		if len(runes) != 1 {
			return nil, fmt.Errorf("replay: unknown key %q", name)
		}
		r.queue = append(r.queue, tea.KeyPressMsg{Code: runes[0], Text: name})
	}
	return r, nil
}

// Next schedules the next key, or nothing once the script is done.
func (r *keyReplay) Next() tea.Cmd {
	if r == nil || len(r.queue) == 0 {
		return nil
	}
	next := r.queue[0]
	r.queue = r.queue[1:]
	return tea.Tick(r.delay, func(time.Time) tea.Msg {
		return replayMsg{key: next}
	})
}

// Len is the number of keys still queued.
func (r *keyReplay) Len() int {
	if r == nil {
		return 0
	}
	return len(r.queue)
}
