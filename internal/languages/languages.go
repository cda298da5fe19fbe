package languages

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Judge0 language ids enabled for challenges. The judge service knows many
// more; this registry is what the deployment advertises and health-checks.

// DefaultID is Python 3, used when a submission does not name a language.
const DefaultID int64 = 71

type Language struct {
	ID   int64
	Name string

	// HelloWorld is a minimal program printing "hello" on stdout,
	// used by the health probe.
	HelloWorld string
}

var registry = []Language{
	{ID: 50, Name: "C (GCC 9.2.0)", HelloWorld: "#include <stdio.h>\nint main(){printf(\"hello\\n\");return 0;}"},
	{ID: 54, Name: "C++ (GCC 9.2.0)", HelloWorld: "#include <cstdio>\nint main(){std::printf(\"hello\\n\");return 0;}"},
	{ID: 60, Name: "Go (1.13.5)", HelloWorld: "package main\nimport \"fmt\"\nfunc main(){fmt.Println(\"hello\")}"},
	{ID: 62, Name: "Java (OpenJDK 13.0.1)", HelloWorld: "public class Main{public static void main(String[] a){System.out.println(\"hello\");}}"},
	{ID: 63, Name: "JavaScript (Node.js 12.14.0)", HelloWorld: "console.log(\"hello\")"},
	{ID: 71, Name: "Python (3.8.1)", HelloWorld: "print(\"hello\")"},
	{ID: 73, Name: "Rust (1.40.0)", HelloWorld: "fn main(){println!(\"hello\");}"},
}

var knownIds = func() mapset.Set[int64] {
	s := mapset.NewSet[int64]()
	for _, l := range registry {
		s.Add(l.ID)
	}
	return s
}()

// Supported reports whether the deployment enables the given language id.
func Supported(id int64) bool {
	return knownIds.Contains(id)
}

// Name returns a display name for the language id, or "" if unknown.
func Name(id int64) string {
	for _, l := range registry {
		if l.ID == id {
			return l.Name
		}
	}
	return ""
}

// All returns the registry in declaration order.
func All() []Language {
	out := make([]Language, len(registry))
	copy(out, registry)
	return out
}
