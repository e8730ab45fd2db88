package domain

// ArtifactIndex maps a build unit name to the directory holding its built
// artifact. It is the result of a strategy's Build call.
type ArtifactIndex map[string]string

// Merge folds other into the index. Earlier entries win on a collision so
// the merged result is independent of completion order; collisions do not
// occur in practice because each unit belongs to exactly one definition.
func (a ArtifactIndex) Merge(other ArtifactIndex) {
	for name, location := range other {
		if _, ok := a[name]; ok {
			continue
		}
		a[name] = location
	}
}
