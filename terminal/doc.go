// Package terminal wraps tcell screen setup and crash recovery for the terminal front-end.
//
// Color capability is detected from the environment the same way across platforms;
// termios restore after a crash is only attempted on unix.
package terminal
