//go:build linux

package hotkeys

import "golang.design/x/hotkey"

// XK_End
const keyEnd hotkey.Key = 0xff57

// Alt = Mod1 on X11
var moveMods = []hotkey.Modifier{hotkey.ModCtrl, hotkey.Mod1}

const moveModsName = "Ctrl+Alt"
