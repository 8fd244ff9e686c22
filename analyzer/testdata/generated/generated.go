// Code generated by hand for tests. DO NOT EDIT.

package generated

import "os"

func leak() {
	f, _ := os.Open("generated")
	_ = f
}
