package explain

import (
	"fmt"

	"github.com/go-sod/clsdemo/internal/classifier"
)

const naiveBayesText = `NAIVE BAYES CLASSIFIER

Naive Bayes is a probabilistic classifier built on Bayes' theorem with the
"naive" assumption that every feature is independent of the others.

Steps:
1. Compute the prior probability of each class
2. Compute the mean and variance of each feature per class
3. Use the Gaussian PDF to compute the likelihood of each feature
4. Multiply the likelihoods per class
5. Compute the posterior probability with Bayes' theorem
6. Pick the class with the highest probability

Bayes: P(Class|Features) = P(Features|Class) × P(Class) / P(Features)

Strengths:
• Fast and efficient
• Works well on small datasets
• No parameters to tune

Weaknesses:
• The independence assumption rarely holds in practice
• Sensitive to irrelevant features
`

const knnText = `K-NEAREST NEIGHBORS (KNN)

KNN classifies a point by the majority class of its K nearest neighbors.

Steps:
1. Compute the distance between the query and every training sample
2. Sort by distance (ascending)
3. Take the K nearest samples
4. Count the votes of the K neighbors
5. Pick the class with the most votes

Distance: Euclidean
d = √[(x₁-x₂)² + (y₁-y₂)² + (z₁-z₂)²]

Strengths:
• Simple and easy to follow
• No assumption about the data distribution
• Handles complex decision boundaries

Weaknesses:
• Expensive on large datasets
• Sensitive to the choice of K
• Degrades in high dimensions (curse of dimensionality)

Choosing K:
• An odd K avoids ties
• K = √n (n = number of samples) as a rule of thumb
• Cross-validation for the best K
`

// Algorithm returns the prose description of alg.
func Algorithm(alg classifier.Algorithm) (string, error) {
	switch alg {
	case classifier.AlgorithmNaiveBayes:
		return naiveBayesText, nil
	case classifier.AlgorithmKNN:
		return knnText, nil
	default:
		return "", fmt.Errorf("unknown algorithm %q", alg)
	}
}
