package generation

import "prompt-studio-api/internal/domain/entity"

const maxStandardTemperature = 0.8

// SamplingFor 根据模式与参数计算采样参数
//
// 快速模式使用固定的保守采样；标准模式温度随创意度线性增长，上限 0.8。
func SamplingFor(mode entity.GenerationMode, params entity.GenerationParams) entity.Sampling {
	if mode.IsFast() {
		return entity.Sampling{
			Temperature:      0.3,
			MaxTokens:        800,
			TopP:             0.7,
			FrequencyPenalty: 0.2,
			PresencePenalty:  0.1,
		}
	}

	temperature := float32(params.Clamped().Creativity) / 10
	if temperature > maxStandardTemperature {
		temperature = maxStandardTemperature
	}
	return entity.Sampling{
		Temperature:      temperature,
		MaxTokens:        1500,
		TopP:             0.85,
		FrequencyPenalty: 0.1,
		PresencePenalty:  0.1,
	}
}
