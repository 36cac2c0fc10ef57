package session

// Phase 会话阶段
type Phase int

const (
	PhaseSeenCards Phase = iota // collecting already-seen cards
	PhaseGate1
	PhaseGate2
	PhaseChoice // pair gate: waiting for BIG or SMALL
	PhaseThirdCard
	PhaseMenu
	PhaseDone
)

var phaseNames = map[Phase]string{
	PhaseSeenCards: "seen-cards",
	PhaseGate1:     "gate-1",
	PhaseGate2:     "gate-2",
	PhaseChoice:    "choice",
	PhaseThirdCard: "third-card",
	PhaseMenu:      "menu",
	PhaseDone:      "done",
}

func (p Phase) String() string {
	return phaseNames[p]
}

// Reply is what the session prints after consuming one line of input.
type Reply struct {
	Output string // may be empty, e.g. after a blank line
	Prompt string // empty once Done
	Done   bool
}

// Prompt labels
const (
	promptSeenCard  = "Seen card (DONE to stop): "
	promptGate1     = "Enter Gate Card 1: "
	promptGate2     = "Enter Gate Card 2: "
	promptChoice    = "Pair gate: choose BIG (>) or SMALL (<): "
	promptThirdCard = "If not revealed yet, type SKIP (you can remove it later via ADD): "
	promptMenu      = "Next: ENTER=continue / ADD=add more seen cards / NEW=reset new deck / COUNT=show deck / QUIT=exit > "
)

// Messages
const (
	msgInvalidSeen     = "Invalid format. Examples: AS, 10H, QD."
	msgDuplicateSeen   = "This card is already removed (duplicate)."
	msgInvalidGate     = "Invalid format. Examples: AS, 10H, QD, KC (suits C/D/H/S)."
	msgDuplicateGate   = "That card has already been removed (duplicate / already used)."
	msgInvalidChoice   = "Please type BIG or SMALL (or B / S)."
	msgInvalidThird    = "Invalid format. Examples: 7S, AH, 10D."
	msgUnavailable     = "That card is not available in the remaining deck (already removed / wrong input)."
	msgThirdIntro      = "Enter the revealed 3rd card to remove it from the deck."
	msgSkip            = "use ADD later to remove the 3rd card when it is revealed."
	msgNoGate          = "Not enough cards left to draw a gate."
	msgNoContinue      = "Not enough cards left to continue."
	msgNothingToDraw   = "No cards left to draw."
	msgUnknownCommand  = "Unknown command. Type HELP for the list of commands."
	msgFarewell        = "Done."
	msgInternalFailure = "Internal error while computing odds; see the debug log."
)
