package bitwig

import "strconv"

// Fixed OSC addresses of the DrivenByMoss API.
const (
	addrPreroll             = "/preroll"
	addrUndo                = "/undo"
	addrRedo                = "/redo"
	addrNextProject         = "/project/+"
	addrPreviousProject     = "/project/-"
	addrEngine              = "/project/engine"
	addrSaveProject         = "/project/save"
	addrStop                = "/stop"
	addrPlay                = "/play"
	addrRestart             = "/restart"
	addrRepeat              = "/repeat"
	addrRecord              = "/record"
	addrOverdub             = "/overdub"
	addrPunchIn             = "/punchIn"
	addrPunchOut            = "/punchOut"
	addrClick               = "/click"
	addrClickVolume         = "/click/volume"
	addrClickPreroll        = "/click/preroll"
	addrCrossfade           = "/crossfade"
	addrAutowrite           = "/autowrite"
	addrAutowriteLauncher   = "/autowrite/launcher"
	addrAutomationWriteMode = "/automationWriteMode"
	addrTempoRaw            = "/tempo/raw"
	addrTempoTap            = "/tempo/tap"
	addrPosition            = "/position"
)

// recArmAddress is /track/{track}/recarm.
func recArmAddress(track int) string {
	return "/track/" + strconv.Itoa(track) + "/recarm"
}

// keyboardAddress is /vkb_midi/{channel}/{timbre}/{suffix}.
func keyboardAddress(channel int, timbre Timbre, suffix string) string {
	return "/vkb_midi/" + strconv.Itoa(channel) + "/" + timbre.String() + "/" + suffix
}

// noteAddress is /vkb_midi/{channel}/{timbre}/{note}.
func noteAddress(channel int, timbre Timbre, note int) string {
	return keyboardAddress(channel, timbre, strconv.Itoa(note))
}
