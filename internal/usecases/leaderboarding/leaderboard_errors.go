package leaderboarding

import "errors"

// ErrLeaderboardNotFound indica um leaderboard inexistente ou inativo
var ErrLeaderboardNotFound = errors.New("leaderboard não encontrado")
