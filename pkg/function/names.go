package function

import (
	"fmt"
	"regexp"
	"strings"
)

// namespaceSeparator splits namespaced function names.
const namespaceSeparator = `\`

var segmentPattern = regexp.MustCompile(`^[\p{L}_][\p{L}\p{N}_]*$`)

// reservedWords cannot name a platform function, in any letter case.
var reservedWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`__halt_compiler abstract and array as break callable case
		catch class clone const continue declare default die do echo else elseif empty
		enddeclare endfor endforeach endif endswitch endwhile enum eval exit extends final
		finally fn for foreach function global goto if implements include include_once
		instanceof insteadof interface isset list match namespace new or print private
		protected public readonly require require_once return static switch throw trait
		try unset use var while xor yield`) {
		reservedWords[w] = struct{}{}
	}
}

func normalize(name string) string {
	return strings.TrimPrefix(strings.TrimSpace(name), namespaceSeparator)
}

// SplitName separates a namespaced name into its namespace and short name.
// Names without a namespace return an empty namespace.
func SplitName(name string) (namespace, short string) {
	name = normalize(name)
	i := strings.LastIndex(name, namespaceSeparator)
	if i < 0 {
		return "", name
	}
	return name[:i], name[i+1:]
}

// ValidateName checks that name can be declared as a function: every
// namespace segment must be an identifier and none may be a reserved word.
func ValidateName(name string) error {
	name = normalize(name)
	if name == "" {
		return fmt.Errorf("function: %w: empty name", ErrInvalidName)
	}
	for _, seg := range strings.Split(name, namespaceSeparator) {
		if !segmentPattern.MatchString(seg) {
			return fmt.Errorf("function: %w: %q", ErrInvalidName, name)
		}
		if _, ok := reservedWords[strings.ToLower(seg)]; ok {
			return fmt.Errorf("function: %w: %q", ErrReservedWord, name)
		}
	}
	return nil
}
