package moderation

import (
	"fmt"

	"github.com/abadojack/whatlanggo"

	"petspace/domain"
	"petspace/notify"
)

// Length and ratio thresholds per tier. Lengths are byte counts, ratios
// apply to uppercase ASCII letters.
const (
	MaxFreeLength  = 100
	MaxAdminLength = 2000

	freeCapsRatio    = 0.3
	premiumCapsRatio = 0.8
	minCapsLength    = 5
	minSpamLength    = 10
	maxRunLength     = 15
)

// freeBlockedWords is the mild plus severe list applied to the free tier,
// matched as whole words.
var freeBlockedWords = []string{
	"stupid", "dumb", "hate", "sucks", "crap", "damn", "hell",
	"shut", "idiot", "loser", "weird", "ugly", "fat",
	"shit", "fuck", "bitch", "ass", "poes",
}

// severeWords is the only list premium users are held to.
var severeWords = []string{
	"fuck", "shit", "bitch", "asshole", "bastard", "whore", "slut",
}

// threatFragments are destructive shell and SQL fragments blocked even for
// admins, matched as unanchored case-insensitive substrings.
var threatFragments = []string{
	"delete from", "drop table", "rm -rf", "format c:",
	"shutdown", "reboot", "kill -9", "sudo rm", "del /s",
}

// PolicyFor builds the default policy for a tier.
func PolicyFor(tier domain.Tier, n *notify.Notifier) (domain.Policy, error) {
	switch tier {
	case domain.TierPremium:
		return NewPremiumPolicy(n)
	case domain.TierAdmin:
		return NewAdminPolicy(n)
	default:
		return NewFreePolicy(n)
	}
}

// FreePolicy holds free-tier messages to a 100 character limit, the full
// blocked-word list and basic caps etiquette.
type FreePolicy struct {
	words  *WordMatcher
	notify *notify.Notifier
}

func NewFreePolicy(n *notify.Notifier) (*FreePolicy, error) {
	words, err := NewWordMatcher(freeBlockedWords)
	if err != nil {
		return nil, err
	}
	return &FreePolicy{words: words, notify: n}, nil
}

func (p *FreePolicy) Name() string   { return "Free User" }
func (p *FreePolicy) MaxLength() int { return MaxFreeLength }

func (p *FreePolicy) Validate(message, sender string) bool {
	p.notify.Debug("validating message", "policy", p.Name(), "user", sender)

	if message == "" {
		p.notify.User(sender + ": Cannot send empty messages")
		return false
	}
	if len(message) > MaxFreeLength {
		p.notify.User(fmt.Sprintf("%s: Message too long! Free users limited to %d characters. Upgrade to Premium for longer messages!", sender, MaxFreeLength))
		return false
	}
	if word, found := p.words.FirstWord(message); found {
		p.notify.Debug("blocked word found", "word", word)
		p.notify.User(sender + ": Language not appropriate! Free users must keep messages family-friendly. Upgrade to Premium for more flexibility!")
		return false
	}
	if caps := countUpper(message); len(message) >= minCapsLength && float64(caps) > freeCapsRatio*float64(len(message)) {
		p.notify.Debug("excessive caps detected", "caps", caps, "length", len(message))
		p.notify.User(sender + ": Please don't use excessive CAPS! Free users must follow basic etiquette rules.")
		return false
	}

	logAccepted(p.notify, p.Name(), sender, message)
	return true
}

// PremiumPolicy drops the length limit but still blocks severe profanity
// and obvious spam.
type PremiumPolicy struct {
	words  *WordMatcher
	notify *notify.Notifier
}

func NewPremiumPolicy(n *notify.Notifier) (*PremiumPolicy, error) {
	words, err := NewWordMatcher(severeWords)
	if err != nil {
		return nil, err
	}
	return &PremiumPolicy{words: words, notify: n}, nil
}

func (p *PremiumPolicy) Name() string   { return "Premium User" }
func (p *PremiumPolicy) MaxLength() int { return -1 }

func (p *PremiumPolicy) Validate(message, sender string) bool {
	p.notify.Debug("validating message", "policy", p.Name(), "user", sender)

	if message == "" {
		p.notify.User(sender + ": Cannot send empty messages")
		return false
	}
	if word, found := p.words.FirstWord(message); found {
		p.notify.Debug("severe profanity detected", "word", word)
		p.notify.User(sender + ": That language is too severe! Even Premium users must avoid extreme profanity.")
		return false
	}
	if p.isSpam(message) {
		p.notify.User(sender + ": Message appears to be spam. Please send meaningful content!")
		return false
	}

	logAccepted(p.notify, p.Name(), sender, message)
	return true
}

// isSpam flags a run of 16 or more identical characters, or a message that
// is more than 80% uppercase. Short messages are exempt.
func (p *PremiumPolicy) isSpam(message string) bool {
	if len(message) < minSpamLength {
		return false
	}
	run, longest := 1, 1
	for i := 1; i < len(message); i++ {
		if message[i] == message[i-1] {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	if longest > maxRunLength {
		p.notify.Debug("excessive character repetition", "run", longest)
		return true
	}
	if caps := countUpper(message); float64(caps) > premiumCapsRatio*float64(len(message)) {
		p.notify.Debug("all caps spam detected", "caps", caps, "length", len(message))
		return true
	}
	return false
}

// AdminPolicy is nearly unrestricted: a high length ceiling and a block on
// destructive command fragments.
type AdminPolicy struct {
	threats *SubstringMatcher
	notify  *notify.Notifier
}

func NewAdminPolicy(n *notify.Notifier) (*AdminPolicy, error) {
	threats, err := NewSubstringMatcher(threatFragments)
	if err != nil {
		return nil, err
	}
	return &AdminPolicy{threats: threats, notify: n}, nil
}

func (p *AdminPolicy) Name() string   { return "Admin User" }
func (p *AdminPolicy) MaxLength() int { return MaxAdminLength }

func (p *AdminPolicy) Validate(message, sender string) bool {
	p.notify.Debug("validating message", "policy", p.Name(), "user", sender)

	if message == "" {
		p.notify.User(sender + ": Cannot send empty messages")
		return false
	}
	if len(message) > MaxAdminLength {
		p.notify.User(fmt.Sprintf("%s: Even admin messages have limits! Max %d characters for system stability.", sender, MaxAdminLength))
		return false
	}
	if fragment, found := p.threats.FirstFragment(message); found {
		p.notify.Debug("system threat detected", "fragment", fragment)
		p.notify.User(sender + ": Admin message blocked - contains potential system threats!")
		return false
	}

	logAccepted(p.notify, p.Name(), sender, message)
	return true
}

func countUpper(message string) int {
	count := 0
	for i := 0; i < len(message); i++ {
		if message[i] >= 'A' && message[i] <= 'Z' {
			count++
		}
	}
	return count
}

// logAccepted traces the approval together with the detected language of
// the message, which feeds moderation statistics.
func logAccepted(n *notify.Notifier, policy, sender, message string) {
	info := whatlanggo.Detect(message)
	n.Debug("message approved",
		"policy", policy,
		"user", sender,
		"length", len(message),
		"lang", info.Lang.Iso6391())
}
