package graph

import "encoding/json"

// ScopeDep is the scope the plugin gives installed packages
const ScopeDep = "dep"

// Node is the typed view of a record as the build plugin writes it
// optional fields are empty when absent, null or not a string
type Node struct {
	Object    string   `json:"o" yaml:"o"`
	Scope     string   `json:"s" yaml:"s"`
	Extension string   `json:"e,omitempty" yaml:"e,omitempty"`
	AbsHash   string   `json:"a,omitempty" yaml:"a,omitempty"`
	ImplHash  string   `json:"i,omitempty" yaml:"i,omitempty"`
	Deps      []string `json:"d" yaml:"d"`
	Version   string   `json:"v,omitempty" yaml:"v,omitempty"`
}

// Node decodes the typed view; it never fails, unusable fields are left empty
func (r Record) Node() Node {
	return Node{
		Object:    r.O,
		Scope:     r.S,
		Extension: r.Extension(),
		AbsHash:   r.AbsHash(),
		ImplHash:  r.ImplHash(),
		Deps:      r.Deps(),
		Version:   r.Version(),
	}
}

// Extension is the source file extension (e), e.g. "tsx"
func (r Record) Extension() string { return r.str("e") }

// AbsHash is the hash of the module source alone (a)
func (r Record) AbsHash() string { return r.str("a") }

// ImplHash folds in the dependency hashes (i); empty until every dependency resolved
func (r Record) ImplHash() string { return r.str("i") }

// Version is the package version (v), set on dep records
func (r Record) Version() string { return r.str("v") }

// Deps returns the mangled keys this record depends on (d), in artifact order
func (r Record) Deps() []string {
	var out []string
	if v, ok := r.fields["d"]; ok {
		if err := json.Unmarshal(v, &out); err != nil {
			return []string{}
		}
	}
	if out == nil {
		return []string{}
	}
	return out
}

// Mangled is the key other records use to reference this one in d
func (r Record) Mangled() string { return Mangle(r.S, r.O, r.Extension()) }

// DependsOn reports whether mangled appears in d
func (r Record) DependsOn(mangled string) bool {
	for _, d := range r.Deps() {
		if d == mangled {
			return true
		}
	}
	return false
}

// Mangle builds a dependency key: scope::object plus ::js or ::css for non-dep sources
// other extensions add nothing, so .ts and .tsx of one object share a key
func Mangle(scope, object, ext string) string {
	k := Key(scope, object)
	if scope == ScopeDep {
		return k
	}
	switch ext {
	case "js", "jsx", "ts", "tsx":
		return k + KeySeparator + "js"
	case "css":
		return k + KeySeparator + "css"
	default:
		return k
	}
}

// Dependents returns the records that list mangled in d, keeping input order
func Dependents(recs []Record, mangled string) []Record {
	out := make([]Record, 0)
	for _, r := range recs {
		if r.DependsOn(mangled) {
			out = append(out, r)
		}
	}
	return out
}

func (r Record) str(name string) string {
	v, ok := r.fields[name]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}
	return s
}
