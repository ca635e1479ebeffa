package session

import "github.com/agnivade/levenshtein"

var settingsCommands = []string{"exit", "round", "goal", "test", "quit"}

// maxSuggestDistance bounds how far a typo may be from a command.
const maxSuggestDistance = 2

// suggest returns the closest command to in, if one is near enough.
// Ties go to the command listed first.
func suggest(in string, commands []string) (string, bool) {
	if in == "" {
		return "", false
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, cmd := range commands {
		d := levenshtein.ComputeDistance(in, cmd)
		if d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best, best != ""
}
