package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Banner lists the controls shared by every frontend.
const Banner = `Game of Life with lockable cells

  left button (press or drag)   toggle a cell alive/dead
  right button (press or drag)  lock/unlock a cell so it stops evolving
  space                         pause / resume (starts paused)
  n                             advance one generation while paused
  s                             scatter a random soup over unlocked cells
  r or c                        clear the grid
  h                             toggle the hover outline (window only)
  q or esc                      quit

The grid is a torus: the top row sees the bottom row, the left column sees
the right column, and all four corners are neighbours.`

// startPrompt is shown after the banner when waiting for the user.
const startPrompt = "PRESS ENTER TO START THE GAME"

// WaitForEnter prints the start prompt to w and blocks until a line is read
// from r. A closed input counts as Enter.
func WaitForEnter(r io.Reader, w io.Writer) error {
	if _, err := fmt.Fprintln(w, "\n"+startPrompt); err != nil {
		return err
	}
	_, err := bufio.NewReader(r).ReadString('\n')
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
