package fu

/*
Fnzl returns the first non-zero value
*/
func Fnzl(e ...int64) int64 {
	for _, x := range e {
		if x != 0 {
			return x
		}
	}
	return 0
}

/*
Fnzf returns the first non-zero value
*/
func Fnzf(e ...float64) float64 {
	for _, x := range e {
		if x != 0 {
			return x
		}
	}
	return 0
}

/*
Fnzs returns the first non-empty string
*/
func Fnzs(e ...string) string {
	for _, x := range e {
		if x != "" {
			return x
		}
	}
	return ""
}
