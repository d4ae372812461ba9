package daemon

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/interior-site/interior-site/internal/auth"
	"github.com/interior-site/interior-site/internal/config"
	"github.com/interior-site/interior-site/internal/db/controller/portfolio"
	"github.com/interior-site/interior-site/internal/db/controller/proposal"
	seedmarker "github.com/interior-site/interior-site/internal/db/controller/seed"
	"github.com/interior-site/interior-site/internal/db/controller/setting"
	"github.com/interior-site/interior-site/internal/db/models"
)

// markerDefaults guards the sample content, which is written once per database.
const markerDefaults = "defaults"

func defaultSettings() map[string]string {
	return map[string]string{
		setting.KeyPhone: "010-1234-5678",
		setting.KeyPhilosophyDesign: "디자인은 도면에서 끝나지 않습니다. 마감 디테일이 완성도를 만듭니다. " +
			"공간의 본질을 이해하고 그에 맞는 최적의 선과 면을 찾아냅니다.",
		setting.KeyPhilosophyConst: "저는 설계 의도가 현장에서 무너지지 않도록 직접 관리합니다. " +
			"기술적인 정밀함이 뒷받침되지 않은 디자인은 완성될 수 없습니다.",
		setting.KeyAboutName: "김태일",
		setting.KeyAboutBio: "15년 경력의 현장 중심 인테리어 디자이너입니다. " +
			"수많은 아파트, 상가, 주택 현장을 직접 발로 뛰며 디자인과 시공의 간극을 줄여왔습니다. " +
			"상담부터 마감까지 제가 직접 책임지고 관리하여 고객님의 소중한 공간을 완성합니다.",
		setting.KeyAboutImage: "https://picsum.photos/seed/profile/800/1000",
	}
}

func samplePortfolio() []models.PortfolioItem {
	return []models.PortfolioItem{
		{
			Category: models.CategoryApartment,
			Title:    "수성구 범어동 래미안",
			Location: "대구 수성구",
			Size:     "32평",
			Scope:    "전체 리모델링",
			Intent:   "웜톤 미니멀 컨셉으로 따뜻하면서도 정돈된 공간을 지향했습니다.",
			Points:   "간접조명 설계 최적화, 600각 포세린 타일 정밀 시공",
			Images:   []string{"https://picsum.photos/seed/apt1/800/1000"},
		},
		{
			Category: models.CategoryCommercial,
			Title:    "동성로 카페 테일러",
			Location: "대구 중구",
			Size:     "25평",
			Scope:    "상가 신축 인테리어",
			Intent:   "인더스트리얼 빈티지 무드에 현대적인 감각을 더한 카페 공간입니다.",
			Points:   "노출 천장 도장 마감, 커스텀 제작 바 테이블",
			Images:   []string{"https://picsum.photos/seed/comm1/800/1000"},
		},
		{
			Category: models.CategoryHouse,
			Title:    "가창면 전원주택",
			Location: "대구 달성군",
			Size:     "45평",
			Scope:    "구조 변경 및 단열 개선",
			Intent:   "기존 노후 주택의 구조적 한계를 극복하고 현대적인 생활 패턴에 맞게 재구성했습니다.",
			Points:   "창호 전면 교체, 단열 성능 극대화, 오픈형 주방 설계",
			Images:   []string{"https://picsum.photos/seed/house1/800/1000"},
		},
	}
}

func sampleProposal() models.DesignProposal {
	return models.DesignProposal{
		Title:     "낡은 벽돌 담장의 현대적 재해석",
		BeforeImg: "https://picsum.photos/seed/before1/800/600",
		AfterImg:  "https://picsum.photos/seed/after1/800/600",
		Material:  "스타코 플렉스 화이트, 매립형 라인 조명",
		Intent: "어둡고 칙칙했던 골목의 담장을 화이트 톤으로 정리하고 라인 조명을 매립하여 " +
			"밤에도 안전하고 세련된 분위기를 연출했습니다.",
	}
}

// seed prepares a database for serving. It runs on every start:
// missing default settings are added, the guard secret is initialised when unset,
// and the sample content is written on the first run only.
func seed(cfg *config.Config, db *gorm.DB, guard *auth.Guard) error {
	if err := seedSecret(cfg, db, guard); err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := setting.InsertMissing(tx, defaultSettings()); err != nil {
			return fmt.Errorf("default settings: %w", err)
		}

		done, err := seedmarker.Done(tx, markerDefaults)
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		items := samplePortfolio()
		for i := range items {
			if err = portfolio.Create(tx, &items[i]); err != nil {
				return fmt.Errorf("sample portfolio: %w", err)
			}
		}

		p := sampleProposal()
		if err = proposal.Create(tx, &p); err != nil {
			return fmt.Errorf("sample proposal: %w", err)
		}

		log.Info().Int("portfolio", len(items)).Int("today_design", 1).Msg("sample content seeded")

		return seedmarker.Mark(tx, markerDefaults)
	})
}

// seedSecret sets the guard secret when none is stored. A secret left in
// site_settings by older databases is adopted and removed from there.
func seedSecret(cfg *config.Config, db *gorm.DB, guard *auth.Guard) error {
	set, err := guard.IsSet()
	if err != nil {
		return err
	}

	legacy, err := setting.Get(db, setting.KeyAdminPassword)
	switch {
	case errors.Is(err, setting.ErrSettingNotFound):
		legacy = ""
	case err != nil:
		return err
	}

	if set && legacy == "" {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if !set {
			secret := cfg.Admin.DefaultSecret
			if legacy != "" {
				secret = legacy
				log.Info().Msg("adopting admin_password from site settings as guard secret")
			} else {
				log.Warn().Msg("guard secret initialised from Admin.DefaultSecret, rotate it")
			}

			if err := guard.RotateTx(tx, secret); err != nil {
				return fmt.Errorf("guard secret: %w", err)
			}
		}

		return setting.Delete(tx, setting.KeyAdminPassword)
	})
}
