//go:build darwin

package hotkeys

import "golang.design/x/hotkey"

// kVK_End
const keyEnd hotkey.Key = 0x77

var moveMods = []hotkey.Modifier{hotkey.ModCtrl, hotkey.ModOption}

const moveModsName = "Ctrl+Option"
