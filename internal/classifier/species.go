package classifier

import "fmt"

// speciesNames is the fixed class enumeration; a classifier's class index
// indexes into this list.
var speciesNames = [...]string{"setosa", "versicolor", "virginica"}

// SpeciesName maps a class index to its species label.
func SpeciesName(index int) (string, error) {
	if index < 0 || index >= len(speciesNames) {
		return "", fmt.Errorf("class index %d outside species enumeration", index)
	}
	return speciesNames[index], nil
}
