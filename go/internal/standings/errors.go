package standings

import "errors"

// ErrNoLeague is returned when the account has no league for the requested
// sport/season
var ErrNoLeague = errors.New("no league found")
