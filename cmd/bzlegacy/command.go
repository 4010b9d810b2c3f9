package main

type Command = string

const (
	CommandSum    Command = "sum"
	CommandMask   Command = "mask"
	CommandDerand Command = "derand"
)

var commandUsage = map[Command]string{
	CommandSum:    "sum [-json] [-q] [-combine] [file...]\tlegacy block checksum of each file (stdin if none)",
	CommandMask:   "mask [-n bytes] [-dump]\t\tbyte offsets toggled by the legacy randomizer",
	CommandDerand: "derand [-q] [-o out] [file]\tapply or reverse legacy randomization",
}

var commandOrder = []Command{CommandSum, CommandMask, CommandDerand}
