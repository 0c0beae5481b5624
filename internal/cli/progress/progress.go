package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"
)

const (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"
	red   = "\033[31m"
	green = "\033[32m"
)

type Status int

const (
	StatusPending Status = iota
	StatusRunning
	StatusSuccess
	StatusFailed
	StatusSkipped
)

// Stage is one step of a sequential pipeline.
type Stage struct {
	Name     string
	Status   Status
	Duration time.Duration
	Error    error
}

// Tracker reports the stages of a pipeline one after another. On a terminal the running
// stage is animated with a spinner; otherwise each transition is printed with a timestamp.
type Tracker struct {
	mu           sync.Mutex
	wg           sync.WaitGroup
	writer       io.Writer
	stages       []Stage
	current      int
	startTime    time.Time
	isTTY        bool
	useColor     bool
	caps         terminalCapabilities
	stopChan     chan struct{}
	stopOnce     sync.Once
	spinnerFrame int
}

var spinnerFrames = []string{"✦", "✸", "✹", "❋", "✹", "✸"}

// NewTracker creates a tracker for the named stages. Terminal features are only used when
// writer is a terminal.
func NewTracker(names []string, writer io.Writer) *Tracker {
	isTTY := false
	caps := terminalCapabilities{terminalWidth: 80}
	if file, ok := writer.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		isTTY = true
		caps = detectCapabilities(file)
	}
	_, noColor := os.LookupEnv("NO_COLOR")

	return newTracker(names, writer, isTTY, !noColor && isTTY && caps.supportsANSI, caps)
}

func newTracker(names []string, writer io.Writer, isTTY bool, useColor bool, caps terminalCapabilities) *Tracker {
	stages := make([]Stage, len(names))
	for i, name := range names {
		stages[i] = Stage{Name: name, Status: StatusPending}
	}
	return &Tracker{
		writer:   writer,
		stages:   stages,
		current:  -1,
		isTTY:    isTTY,
		useColor: useColor,
		caps:     caps,
		stopChan: make(chan struct{}),
	}
}

// Start begins the spinner animation in TTY mode.
func (t *Tracker) Start() {
	if t.isTTY {
		t.wg.Add(1)
		go t.animate()
	}
}

// Run executes step as the stage at index and records its outcome.
func (t *Tracker) Run(index int, step func() error) error {
	t.StartStage(index)
	err := step()
	t.CompleteStage(index, err)
	return err
}

func (t *Tracker) StartStage(index int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.current = index
	t.stages[index].Status = StatusRunning
	t.startTime = time.Now()

	if !t.isTTY {
		fmt.Fprintf(t.writer, "[%s] %s %s...\n", timestamp(), t.counter(index), t.stages[index].Name)
	}
}

// CompleteStage records the outcome of the running stage and prints its final line.
func (t *Tracker) CompleteStage(index int, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	stage := &t.stages[index]
	stage.Duration = time.Since(t.startTime)
	if err != nil {
		stage.Status = StatusFailed
		stage.Error = err
	} else {
		stage.Status = StatusSuccess
	}
	t.printCompletion(index)
}

// Skip marks a stage that will not run, e.g. after an earlier failure.
func (t *Tracker) Skip(index int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stages[index].Status = StatusSkipped
}

func (t *Tracker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
	})
	t.wg.Wait()

	if t.isTTY {
		t.mu.Lock()
		fmt.Fprint(t.writer, clearLine(t.caps))
		t.mu.Unlock()
	}
}

func (t *Tracker) Stages() []Stage {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]Stage(nil), t.stages...)
}

// Summary returns e.g. "3 succeeded, 1 failed in 2s".
func (t *Tracker) Summary() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var total time.Duration
	counts := map[Status]int{}
	for _, stage := range t.stages {
		total += stage.Duration
		counts[stage.Status]++
	}

	var parts []string
	if n := counts[StatusSuccess]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d succeeded", n))
	}
	if n := counts[StatusFailed]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", n))
	}
	if n := counts[StatusSkipped]; n > 0 {
		parts = append(parts, fmt.Sprintf("%d skipped", n))
	}
	if len(parts) == 0 {
		parts = append(parts, "nothing ran")
	}
	return fmt.Sprintf("%s in %s", strings.Join(parts, ", "), FormatDuration(total))
}

func (t *Tracker) printCompletion(index int) {
	stage := t.stages[index]

	sym, suffix := "+", fmt.Sprintf("(%s)", FormatDuration(stage.Duration))
	color := green
	if stage.Status == StatusFailed {
		sym, suffix, color = "x", suffix+" FAILED", red
	}

	counter := t.counter(index)
	if t.isTTY {
		fmt.Fprint(t.writer, clearLine(t.caps))
	} else {
		counter = fmt.Sprintf("[%s] %s", timestamp(), counter)
	}
	if t.useColor {
		sym = color + sym + reset
		counter = dim + counter + reset
		suffix = dim + suffix + reset
	}

	fmt.Fprintf(t.writer, "  %s %s  %s  %s\n", sym, counter, stage.Name, suffix)
}

func (t *Tracker) animate() {
	defer t.wg.Done()
	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-t.stopChan:
			return
		case <-ticker.C:
			t.mu.Lock()
			if t.current >= 0 && t.stages[t.current].Status == StatusRunning {
				t.spinnerFrame++
				fmt.Fprint(t.writer, clearLine(t.caps)+truncateToWidth(t.statusLine(), t.caps.terminalWidth))
			}
			t.mu.Unlock()
		}
	}
}

func (t *Tracker) statusLine() string {
	spinner := spinnerFrames[t.spinnerFrame%len(spinnerFrames)]
	elapsed := FormatDuration(time.Since(t.startTime))
	name := t.stages[t.current].Name
	counter := t.counter(t.current)
	if t.useColor {
		return fmt.Sprintf("  %s%s %s  %s%s  %s%s%s", bold, spinner, counter, name, reset, dim, elapsed, reset)
	}
	return fmt.Sprintf("  %s %s  %s  %s", spinner, counter, name, elapsed)
}

func (t *Tracker) counter(index int) string {
	return fmt.Sprintf("[%d/%d]", index+1, len(t.stages))
}

func timestamp() string {
	return time.Now().Format("15:04:05")
}

func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	d = d.Round(time.Second)
	m := d / time.Minute
	s := (d % time.Minute) / time.Second
	if m > 0 {
		return fmt.Sprintf("%dm %02ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
