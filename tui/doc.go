// Package tui renders the bridge form as a bubbletea program.
//
//   - state.go: Model, Options, focusable controls
//   - update.go: Update() and message dispatch
//   - input_states.go: per-control key handling and focus movement
//   - view.go: View() and layout
//   - styles.go: theme bundles and color helpers
//   - animation.go: entrance easing and button springs
//   - commands.go: frame messages and tick commands
//   - artwork.go: NFT placeholder grid
package tui
