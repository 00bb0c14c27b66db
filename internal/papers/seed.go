// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import "github.com/pdiddy/techaware/pkg/types"

// seedPapers returns the built-in demo collection installed when no
// persisted file exists yet. It keeps the read API and frontend usable
// before the first ingestion run.
func seedPapers() []types.Paper {
	return []types.Paper{
		{
			ID:          "1",
			ArxivID:     "2401.12345",
			Title:       "Efficient Attention Mechanisms for Large Language Models",
			Authors:     []string{"Smith, J.", "Johnson, A.", "Williams, R."},
			Abstract:    "We propose a novel attention mechanism that reduces computational complexity while maintaining model performance. Our approach achieves 40% faster training times on large-scale language models.",
			Category:    "Machine Learning",
			PublishedAt: "2024-01-15",
			PDFURL:      "https://arxiv.org/pdf/2401.12345",
			SummaryShort: "Novel attention mechanism reduces LLM training time by 40% while maintaining accuracy.",
			ImpactSuggestions: []string{
				"MLOps: Faster model training and deployment cycles",
				"Research: New baseline for efficient transformer architectures",
			},
			Tags:  []string{"LLM", "Attention", "Efficiency"},
			Score: 95.0,
		},
		{
			ID:          "2",
			ArxivID:     "2401.23456",
			Title:       "Federated Learning with Differential Privacy Guarantees",
			Authors:     []string{"Chen, L.", "Kumar, P."},
			Abstract:    "This paper introduces a framework for federated learning with provable privacy guarantees using differential privacy techniques.",
			Category:    "Privacy & Security",
			PublishedAt: "2024-01-14",
			PDFURL:      "https://arxiv.org/pdf/2401.23456",
			SummaryShort: "Framework enables privacy-preserving distributed ML with mathematical guarantees.",
			ImpactSuggestions: []string{
				"Healthcare: Secure collaborative model training across hospitals",
				"Finance: Privacy-compliant fraud detection systems",
			},
			Tags:  []string{"Federated Learning", "Privacy", "Security"},
			Score: 88.0,
		},
		{
			ID:          "3",
			ArxivID:     "2401.34567",
			Title:       "Real-Time Object Detection on Edge Devices",
			Authors:     []string{"Park, S.", "Lee, M.", "Kim, H."},
			Abstract:    "We present an optimized architecture for real-time object detection on resource-constrained edge devices.",
			Category:    "Computer Vision",
			PublishedAt: "2024-01-13",
			PDFURL:      "https://arxiv.org/pdf/2401.34567",
			SummaryShort: "Lightweight model achieves 60 FPS object detection on mobile devices.",
			ImpactSuggestions: []string{
				"IoT: Real-time monitoring for smart cities and surveillance",
				"Robotics: Enhanced perception for autonomous navigation",
			},
			Tags:  []string{"Computer Vision", "Edge Computing", "Real-Time"},
			Score: 82.0,
		},
	}
}
