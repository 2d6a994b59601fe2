// Copyright (c) 2025 BVK Chaitanya

package diag

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

var pid = os.Getpid()

// stamp builds the fixed line prefix: the ctime-style local timestamp in
// brackets, the process id right-justified to six columns, the program
// identity and the channel tag.
func (r *Router) stamp(tag string, now time.Time) string {
	return fmt.Sprintf("[%s]%6d %s %s: ", now.Format(time.ANSIC), pid, r.program, tag)
}

// formatMessage joins args into one message, appends the caller's
// " at FILE line N." location when the message does not already end in a
// newline, and prefixes the stamp to every line of the result.
//
// skip counts stack frames above formatMessage when locating the caller,
// exactly as in runtime.Caller.
func (r *Router) formatMessage(skip int, tag string, args []any) string {
	msg := fmt.Sprint(args...)
	if !strings.HasSuffix(msg, "\n") {
		if _, file, line, ok := runtime.Caller(skip); ok {
			msg += fmt.Sprintf(" at %s line %d.", filepath.Base(file), line)
		}
		msg += "\n"
	}

	stamp := r.stamp(tag, time.Now())
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(msg, "\n"), "\n") {
		sb.WriteString(stamp)
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
