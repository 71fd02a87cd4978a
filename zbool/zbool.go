package zbool

// FromString parses 1/true/TRUE and 0/false/FALSE, returning def for anything else
func FromString(str string, def bool) bool {
	if str == "1" || str == "true" || str == "TRUE" {
		return true
	}
	if str == "0" || str == "false" || str == "FALSE" {
		return false
	}
	return def
}

