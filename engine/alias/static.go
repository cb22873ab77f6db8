package alias

// StaticAliases is the process-wide constant alias table. It is
// consulted before any project or profile alias and is never mutated.
var StaticAliases = map[string]string{
	"-h":        "help",
	"-help":     "help",
	"--help":    "help",
	"-v":        "version",
	"-version":  "version",
	"--version": "version",
	"cp":        "classpath",
}
