package league

import "github.com/preston-bernstein/dugout/internal/domain"

// DefaultOpponent plays every game against the user's team.
const DefaultOpponent = "Anglers"

func userRoster(team string) domain.Team {
	return domain.Team{
		Name: team,
		Players: []domain.Player{
			{ID: 1, Name: "Taro Yamada", Position: "P", IsPitcher: true},
			{ID: 2, Name: "Kenta Tanaka", Position: "C"},
			{ID: 3, Name: "Ichiro Suzuki", Position: "1B"},
			{ID: 4, Name: "Daisuke Sato", Position: "2B"},
			{ID: 5, Name: "Makoto Takahashi", Position: "3B"},
			{ID: 6, Name: "Yuichi Ito", Position: "SS"},
			{ID: 7, Name: "Ryo Watanabe", Position: "LF"},
			{ID: 8, Name: "Tsuyoshi Yamamoto", Position: "CF"},
			{ID: 9, Name: "Shunsuke Nakamura", Position: "RF"},
			{ID: 10, Name: "Kenji Kobayashi", Position: "P", IsPitcher: true},
			{ID: 11, Name: "Takuya Kato", Position: "C"},
			{ID: 12, Name: "Keisuke Yoshida", Position: "OF"},
		},
	}
}

func opponentRoster(team string) domain.Team {
	return domain.Team{
		Name: team,
		Players: []domain.Player{
			{ID: 101, Name: "Hiroshi Matsumoto", Position: "P", IsPitcher: true},
			{ID: 102, Name: "Naoki Inoue", Position: "C"},
			{ID: 103, Name: "Sho Kimura", Position: "1B"},
			{ID: 104, Name: "Yusuke Hayashi", Position: "2B"},
			{ID: 105, Name: "Kazuki Shimizu", Position: "3B"},
			{ID: 106, Name: "Tomoya Yamaguchi", Position: "SS"},
			{ID: 107, Name: "Ryota Mori", Position: "LF"},
			{ID: 108, Name: "Koji Ikeda", Position: "CF"},
			{ID: 109, Name: "Masaki Hashimoto", Position: "RF"},
			{ID: 110, Name: "Jun Abe", Position: "P", IsPitcher: true},
		},
	}
}
