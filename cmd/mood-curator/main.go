// Command mood-curator curates mood-matched playlists from candidate track
// libraries.
package main

import "github.com/moodcue/go-mood-curator/internal/cmd"

func main() {
	cmd.Execute()
}
