package ui

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/nxadm/tail"

	"flashlight/config"
)

const (
	maxLogLines = 1000 // Lines kept in the window
)

// readLastLines returns up to n trailing lines of the file at path.
func readLastLines(path string, n int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	var lines []string
	for scanner.Scan() {
		lines = appendCapped(lines, scanner.Text(), n)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// appendCapped appends line and drops the oldest lines beyond limit.
func appendCapped(lines []string, line string, limit int) []string {
	lines = append(lines, line)
	if over := len(lines) - limit; over > 0 {
		lines = append(lines[:0], lines[over:]...)
	}
	return lines
}

// filterLines returns the lines containing query, ignoring case.
func filterLines(lines []string, query string) []string {
	queryLower := strings.ToLower(query)

	var filtered []string
	for _, line := range lines {
		if strings.Contains(strings.ToLower(line), queryLower) {
			filtered = append(filtered, line)
		}
	}
	return filtered
}

// ShowLogWindow opens a window with the last lines of the log file and follows
// new lines while it is open.
//
// Parameters:
//   - flashlightApp: The running application
//   - configDir: The directory holding flashlight.log
func ShowLogWindow(flashlightApp fyne.App, configDir string) {
	logFilePath := config.LogFilePath(configDir)

	logWindow := flashlightApp.NewWindow("Flashlight Log")
	logWindow.Resize(fyne.NewSize(800, 600))

	// Use a Label for better performance
	logLabel := widget.NewLabel("Loading log file...")
	logLabel.Wrapping = fyne.TextWrapWord

	searchEntry := widget.NewEntry()
	searchEntry.SetPlaceHolder("Search in loaded lines...")

	var lines []string
	var query string
	following := true

	infoLabel := widget.NewLabel("")
	scroll := container.NewScroll(logLabel)

	updateDisplay := func() {
		if query != "" {
			filtered := filterLines(lines, query)
			if len(filtered) == 0 {
				logLabel.SetText(fmt.Sprintf("No results found for: %s", query))
			} else {
				logLabel.SetText(strings.Join(filtered, "\n") + fmt.Sprintf("\n\n[Found %d matches]", len(filtered)))
			}
		} else {
			logLabel.SetText(strings.Join(lines, "\n"))
			if following {
				scroll.ScrollToBottom()
			}
		}
		infoLabel.SetText(fmt.Sprintf("Showing last %d lines of %s", len(lines), logFilePath))
	}

	searchButton := widget.NewButton("Search", func() {
		query = searchEntry.Text
		updateDisplay()
	})
	searchEntry.OnSubmitted = func(text string) {
		query = text
		updateDisplay()
	}

	clearButton := widget.NewButton("Clear Search", func() {
		searchEntry.SetText("")
		query = ""
		updateDisplay()
	})

	followCheck := widget.NewCheck("Follow", func(on bool) {
		following = on
	})
	followCheck.SetChecked(true)

	openDirButton := widget.NewButton("Open Log Directory", func() {
		openDirectory(configDir, logWindow)
	})

	searchBox := container.NewBorder(nil, nil, nil,
		container.NewHBox(searchButton, clearButton, followCheck, openDirButton),
		searchEntry)

	content := container.NewBorder(
		container.NewVBox(searchBox, infoLabel),
		nil, nil, nil,
		scroll,
	)
	logWindow.SetContent(content)

	initial, err := readLastLines(logFilePath, maxLogLines)
	if err != nil {
		logLabel.SetText(fmt.Sprintf("Failed to open log file: %v", err))
	} else {
		lines = initial
		updateDisplay()
	}

	// Follow new lines from the end of the file. ReOpen keeps following across
	// rotation by the rotating logger.
	follower, err := tail.TailFile(logFilePath, tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: false,
		Location:  &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd},
		Logger:    tail.DiscardingLogger,
	})
	if err != nil {
		log.Printf("[UI] Cannot follow log file: %v", err)
	} else {
		go func() {
			for line := range follower.Lines {
				if line.Err != nil {
					continue
				}
				text := line.Text
				fyne.Do(func() {
					lines = appendCapped(lines, text, maxLogLines)
					updateDisplay()
				})
			}
		}()
		logWindow.SetOnClosed(func() {
			if err := follower.Stop(); err != nil {
				log.Printf("[UI] Error stopping log follower: %v", err)
			}
			follower.Cleanup()
		})
	}

	logWindow.Show()
}

// openDirectory opens the file manager to the specified directory
func openDirectory(path string, parent fyne.Window) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("explorer", path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		dialog.ShowError(fmt.Errorf("unsupported operating system"), parent)
		return
	}

	err := cmd.Start()
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to open directory: %v", err), parent)
	}
}
