// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import "github.com/danielhkuo/idolboard/models"

func intPtr(n int) *int { return &n }

// FixtureArtists: two female soloists at priority 1 and a male soloist at 2
func FixtureArtists() []models.Artist {
	return []models.Artist{
		{
			ID:             1,
			NameKo:         "김민지",
			NameEn:         models.StringPtr("Minji"),
			StageNameKo:    models.StringPtr("민지"),
			StageNameEn:    models.StringPtr("Minji"),
			Gender:         models.StringPtr("FEMALE"),
			BioKo:          models.StringPtr("뉴진스의 리더"),
			BioEn:          models.StringPtr("Leader of NewJeans"),
			IsVerified:     true,
			GlobalPriority: intPtr(1),
			PhotoURL:       models.StringPtr("https://img.example.com/minji.jpg"),
			Groups: []models.ArtistGroup{{
				GroupID: 10,
				NameKo:  models.StringPtr("뉴진스"),
				NameEn:  models.StringPtr("NewJeans"),
				Roles:   []string{"Leader", "Vocal"},
			}},
		},
		{
			ID:             2,
			NameKo:         "팜하니",
			NameEn:         models.StringPtr("Hanni"),
			Gender:         models.StringPtr("FEMALE"),
			GlobalPriority: intPtr(1),
		},
		{
			ID:             3,
			NameKo:         "전정국",
			NameEn:         models.StringPtr("Jungkook"),
			Gender:         models.StringPtr("MALE"),
			GlobalPriority: intPtr(2),
		},
	}
}

// FixtureGroups: one girl group and two boy groups under three labels
func FixtureGroups() []models.Group {
	return []models.Group{
		{
			ID:             10,
			NameKo:         "뉴진스",
			NameEn:         models.StringPtr("NewJeans"),
			Gender:         models.StringPtr("FEMALE"),
			DebutDate:      models.StringPtr("2022-07-22"),
			LabelKo:        models.StringPtr("어도어"),
			LabelEn:        models.StringPtr("ADOR"),
			FandomNameKo:   models.StringPtr("버니즈"),
			FandomNameEn:   models.StringPtr("Bunnies"),
			ActivityStatus: models.StringPtr(models.StatusActive),
			IsVerified:     true,
			PhotoURL:       models.StringPtr("https://img.example.com/newjeans.jpg"),
			Members: []models.GroupMember{{
				ArtistID:    1,
				NameKo:      models.StringPtr("김민지"),
				NameEn:      models.StringPtr("Minji"),
				StageNameKo: models.StringPtr("민지"),
				StageNameEn: models.StringPtr("Minji"),
				Roles:       []string{"Leader"},
			}},
		},
		{
			ID:             11,
			NameKo:         "방탄소년단",
			NameEn:         models.StringPtr("BTS"),
			Gender:         models.StringPtr("MALE"),
			LabelKo:        models.StringPtr("빅히트 뮤직"),
			ActivityStatus: models.StringPtr(models.StatusHiatus),
		},
		{
			ID:             12,
			NameKo:         "세븐틴",
			NameEn:         models.StringPtr("SEVENTEEN"),
			Gender:         models.StringPtr("MALE"),
			LabelKo:        models.StringPtr("플레디스"),
			ActivityStatus: models.StringPtr(models.StatusActive),
		},
	}
}

// FixtureArticles: three Minji articles sharing two distinct images (101's
// thumbnail differs from 100's only by query), one Hanni article, one without
// a thumbnail and one without a subject.
func FixtureArticles() []models.Article {
	return []models.Article{
		{
			ID:           100,
			TitleKo:      models.StringPtr("민지 화보 공개"),
			TitleEn:      models.StringPtr("Minji reveals pictorial"),
			SummaryKo:    models.StringPtr("민지가 새 화보를 공개했다."),
			SummaryEn:    models.StringPtr("Minji released a new pictorial."),
			ContentKo:    models.StringPtr("<p>첫 문단</p>\n\n<p>둘째 문단<script>alert(1)</script></p>"),
			Author:       models.StringPtr("기자"),
			PublishedAt:  models.StringPtr("2025-02-27T09:00:00Z"),
			ArtistNameKo: models.StringPtr("김민지"),
			ArtistNameEn: models.StringPtr("Minji"),
			HashtagsKo:   []string{"민지", "뉴진스"},
			HashtagsEn:   []string{"Minji", "NewJeans"},
			ThumbnailURL: models.StringPtr("https://img.example.com/a.jpg"),
			SourceURL:    models.StringPtr("https://news.example.com/100"),
			ExtraImages:  []models.ExtraImage{{URL: "https://img.example.com/a2.jpg"}, {URL: ""}},
		},
		{
			ID:           101,
			TitleKo:      models.StringPtr("민지 공항 패션"),
			TitleEn:      models.StringPtr("Minji airport fashion"),
			ArtistNameKo: models.StringPtr("김민지"),
			ArtistNameEn: models.StringPtr("Minji"),
			ThumbnailURL: models.StringPtr("https://img.example.com/a.jpg?w=300"),
		},
		{
			ID:           102,
			TitleKo:      models.StringPtr("민지 무대"),
			TitleEn:      models.StringPtr("Minji on stage"),
			ArtistNameKo: models.StringPtr("김민지"),
			ArtistNameEn: models.StringPtr("Minji"),
			ThumbnailURL: models.StringPtr("https://img.example.com/b.jpg"),
		},
		{
			ID:           103,
			TitleKo:      models.StringPtr("하니 인터뷰"),
			TitleEn:      models.StringPtr("Hanni interview"),
			SummaryKo:    models.StringPtr("하니 인터뷰 요약"),
			ArtistNameKo: models.StringPtr("팜하니"),
			ArtistNameEn: models.StringPtr("Hanni"),
			ThumbnailURL: models.StringPtr("https://img.example.com/c.jpg"),
		},
		{
			ID:           104,
			TitleKo:      models.StringPtr("정국 컴백"),
			TitleEn:      models.StringPtr("Jungkook comeback"),
			ArtistNameKo: models.StringPtr("전정국"),
			ArtistNameEn: models.StringPtr("Jungkook"),
		},
		{
			ID:           105,
			TitleKo:      models.StringPtr("가요계 소식"),
			ThumbnailURL: models.StringPtr("https://img.example.com/d.jpg"),
		},
	}
}
