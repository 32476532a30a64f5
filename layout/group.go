package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Group is a run of consecutive texture records in the source buffer.
type Group struct {
	Offset int
	Count  int
}

// DigDug lists the texture groups of the CGA Dig Dug executable.
var DigDug = []Group{
	{Offset: 0x4270, Count: 103},
	{Offset: 0x579e, Count: 32},
	{Offset: 0x5a2e, Count: 63},
}

func (g Group) String() string {
	return fmt.Sprintf("0x%x:%d", g.Offset, g.Count)
}

// ParseGroup parses OFFSET:COUNT. Both parts accept Go integer literal
// prefixes such as 0x.
func ParseGroup(s string) (Group, error) {
	off, count, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Group{}, fmt.Errorf("invalid group %q, should be OFFSET:COUNT", s)
	}

	o, err := strconv.ParseUint(off, 0, 31)
	if err != nil {
		return Group{}, fmt.Errorf("invalid group offset %q: %w", off, err)
	}

	n, err := strconv.ParseUint(count, 0, 31)
	if err != nil {
		return Group{}, fmt.Errorf("invalid group count %q: %w", count, err)
	}

	return Group{Offset: int(o), Count: int(n)}, nil
}

// ParseGroups parses every entry of list with ParseGroup.
func ParseGroups(list []string) ([]Group, error) {
	groups := make([]Group, 0, len(list))
	for _, s := range list {
		g, err := ParseGroup(s)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}
