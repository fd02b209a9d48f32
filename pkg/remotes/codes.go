// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The irscope authors

package remotes

// Built-in code tables for the remotes we have on the bench
var builtinTables = []Table{
	{
		Device: "Vizio Soundbar",
		Buttons: []Button{
			{Name: "POWER_TOGGLE", Code: 0x00FF02FD},
			{Name: "VOLUME_UP", Code: 0x00FF827D},
			{Name: "VOLUME_DOWN", Code: 0x00FFA25D},
			{Name: "MUTE_TOGGLE", Code: 0x00FF12ED},
		},
	},
	{
		Device: "LG TV",
		Buttons: []Button{
			{Name: "POWER_TOGGLE", Code: 0x20DF10EF},
			{Name: "VOLUME_UP", Code: 0x20DF40BF},
			{Name: "VOLUME_DOWN", Code: 0x20DFC03F},
			{Name: "MUTE_TOGGLE", Code: 0x20DF906F},
		},
	},
}
