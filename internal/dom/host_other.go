//go:build !(js && wasm)

package dom

// Default returns nil outside the browser: there is no global document.
func Default() Host {
	return nil
}
