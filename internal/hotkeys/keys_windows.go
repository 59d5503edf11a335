//go:build windows

package hotkeys

import "golang.design/x/hotkey"

// VK_END
const keyEnd hotkey.Key = 0x23

var moveMods = []hotkey.Modifier{hotkey.ModCtrl, hotkey.ModAlt}

const moveModsName = "Ctrl+Alt"
