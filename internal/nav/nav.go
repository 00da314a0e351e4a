// Package nav models the app's screen routing: a fixed table of named
// paths and the placeholder interpolation used to build detail links.
package nav

import (
	"fmt"
	"strings"
)

// Screen identifies one application screen.
type Screen string

const (
	ScreenDashboard      Screen = "dashboard"
	ScreenStudents       Screen = "students"
	ScreenStudentDetails Screen = "student-details"
	ScreenExercises      Screen = "exercises"
	ScreenCreateWorkout  Screen = "create-workout"
	ScreenWorkoutMode    Screen = "workout-mode"
	ScreenWorkouts       Screen = "workouts"
	ScreenAchievements   Screen = "achievements"
	ScreenMessages       Screen = "messages"
	ScreenProgress       Screen = "progress"
	ScreenProfile        Screen = "profile"
	ScreenSubscription   Screen = "subscription"
	ScreenNotFound       Screen = "not-found"
)

// Route maps a path template to a screen.
type Route struct {
	Path   string `json:"path"`
	Screen Screen `json:"screen"`
}

// Routes is the full route surface, one screen per path. Role gating is
// not enforced here; screens self-select content by the user's role.
var Routes = []Route{
	{Path: "/", Screen: ScreenDashboard},
	{Path: "/students", Screen: ScreenStudents},
	{Path: "/student/:id", Screen: ScreenStudentDetails},
	{Path: "/exercises", Screen: ScreenExercises},
	{Path: "/create-workout", Screen: ScreenCreateWorkout},
	{Path: "/workout-mode", Screen: ScreenWorkoutMode},
	{Path: "/workouts", Screen: ScreenWorkouts},
	{Path: "/achievements", Screen: ScreenAchievements},
	{Path: "/messages", Screen: ScreenMessages},
	{Path: "/progress", Screen: ScreenProgress},
	{Path: "/profile", Screen: ScreenProfile},
	{Path: "/subscription", Screen: ScreenSubscription},
}

// Params maps placeholder names to string-or-number values.
type Params map[string]any

// Interpolate substitutes every `:name` placeholder in the template with
// the string form of params[name]. Placeholders without a matching param
// stay literal. The template is scanned in a single pass, so substituted
// values are never re-matched.
func Interpolate(template string, params Params) string {
	if len(params) == 0 {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))
	for i := 0; i < len(template); {
		if template[i] != ':' {
			b.WriteByte(template[i])
			i++
			continue
		}

		j := i + 1
		for j < len(template) && isNameChar(template[j]) {
			j++
		}
		name := template[i+1 : j]
		if value, ok := params[name]; ok && name != "" {
			b.WriteString(fmt.Sprint(value))
		} else {
			b.WriteString(template[i:j])
		}
		i = j
	}
	return b.String()
}

// Resolve matches a concrete path against the route table, treating
// `:name` segments as wildcards. Unmatched paths resolve to the
// not-found screen.
func Resolve(path string) Screen {
	for _, route := range Routes {
		if matches(route.Path, path) {
			return route.Screen
		}
	}
	return ScreenNotFound
}

func matches(template, path string) bool {
	tSegs := strings.Split(strings.Trim(template, "/"), "/")
	pSegs := strings.Split(strings.Trim(path, "/"), "/")
	if len(tSegs) != len(pSegs) {
		return false
	}
	for i := range tSegs {
		if strings.HasPrefix(tSegs[i], ":") {
			if pSegs[i] == "" {
				return false
			}
			continue
		}
		if tSegs[i] != pSegs[i] {
			return false
		}
	}
	return true
}

func isNameChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}
