package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const maxProgressWidth = 80

type progressMsg float64

type progressErrMsg struct{ err error }

type downloadModel struct {
	progress progress.Model
	err      error
}

func (m downloadModel) Init() tea.Cmd { return nil }

func (m downloadModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = fmt.Errorf("download interrupted")
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 8
		if m.progress.Width > maxProgressWidth {
			m.progress.Width = maxProgressWidth
		}
		return m, nil

	case progressErrMsg:
		m.err = msg.err
		return m, tea.Quit

	case progressMsg:
		var cmds []tea.Cmd
		if msg >= 1.0 {
			// Let the bar visibly fill before the program exits.
			cmds = append(cmds, tea.Sequence(finalPause(), tea.Quit))
		}
		cmds = append(cmds, m.progress.SetPercent(float64(msg)))
		return m, tea.Batch(cmds...)

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m downloadModel) View() string {
	if m.err != nil {
		return ""
	}
	return "  " + m.progress.View() + "\n"
}

func finalPause() tea.Cmd {
	return tea.Tick(time.Millisecond*250, func(_ time.Time) tea.Msg {
		return nil
	})
}

// copyWithProgress copies src to dst while driving a progress bar in a
// bubbletea program. total is the expected byte count.
func copyWithProgress(dst io.Writer, src io.Reader, total int) error {
	p := tea.NewProgram(downloadModel{
		progress: progress.New(progress.WithDefaultGradient()),
	})

	var copyErr error
	go func() {
		counter := &progressCounter{
			total: total,
			send:  func(ratio float64) { p.Send(progressMsg(ratio)) },
		}
		if _, err := io.Copy(dst, io.TeeReader(src, counter)); err != nil {
			copyErr = err
			p.Send(progressErrMsg{err: err})
			return
		}
		p.Send(progressMsg(1.0))
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(downloadModel); ok && m.err != nil {
		return m.err
	}
	return copyErr
}

type progressCounter struct {
	total      int
	downloaded int
	send       func(float64)
}

func (c *progressCounter) Write(b []byte) (int, error) {
	c.downloaded += len(b)
	if c.total > 0 {
		c.send(float64(c.downloaded) / float64(c.total))
	}
	return len(b), nil
}
